package timesheet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidEdit is returned for edit input that cannot be applied;
// existing sessions are left untouched.
var ErrInvalidEdit = errors.New("invalid edit")

var meridiemRE = regexp.MustCompile(`^(\d{1,2}:\d{2})\s*(AM|PM)$`)

// ParseMeridiemTime parses a user-entered "HH:MM AM|PM" clock value.
// The hour may be written in 24-hour form; AM/PM only adjusts the
// boundary hours (PM adds 12 below noon, 12 AM becomes midnight).
func ParseMeridiemTime(s string) (time.Time, error) {
	m := meridiemRE.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not HH:MM AM/PM", ErrInvalidEdit, s)
	}
	t, err := time.Parse("15:04", m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidEdit, s, err)
	}
	switch {
	case m[2] == "PM" && t.Hour() < 12:
		t = t.Add(12 * time.Hour)
	case m[2] == "AM" && t.Hour() == 12:
		t = t.Add(-12 * time.Hour)
	}
	return t, nil
}

// Edit replaces session i of an employee with times re-entered as
// "HH:MM AM/PM". The OUT time rolls to the next day when it does not
// follow the IN time. Hours are recomputed from the entered interval;
// a forced override for the resulting pair contributes only its flag.
// The employee total is recomputed before returning.
func (s *Sheet) Edit(name string, i int, inText, outText string) (Session, float64, error) {
	in, err := ParseMeridiemTime(inText)
	if err != nil {
		return Session{}, 0, err
	}
	out, err := ParseMeridiemTime(outText)
	if err != nil {
		return Session{}, 0, err
	}
	if !out.After(in) {
		out = out.Add(24 * time.Hour)
	}
	d := out.Sub(in)
	if d <= 0 {
		return Session{}, 0, fmt.Errorf("%w: non-positive duration", ErrInvalidEdit)
	}

	sess := Session{
		In:    in.Format("15:04"),
		Out:   out.Format("15:04"),
		Hours: quarterHours(d),
	}
	if o, ok := s.resolver.overrides[PairKey{In: sess.In, Out: sess.Out}]; ok {
		sess.Flagged = o.Flagged
	} else {
		sess.Flagged = s.resolver.flagged(sess.In, sess.Out)
	}

	if err := s.Replace(name, i, sess); err != nil {
		return Session{}, 0, fmt.Errorf("%w: %v", ErrInvalidEdit, err)
	}
	emp := s.employees[capitalize(strings.ToLower(strings.TrimSpace(name)))]
	return sess, emp.TotalHours, nil
}
