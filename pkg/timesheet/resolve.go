package timesheet

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoShift is returned when no AM/PM interpretation of an (in, out) pair
// yields a plausible shift duration.
var ErrNoShift = errors.New("no plausible shift duration")

// PairKey is an exact (in, out) clock pair in HH:MM form.
type PairKey struct {
	In  string
	Out string
}

// Override pins the resolution of a known ambiguous pair, typically a
// near-midnight overnight shift the duration heuristic cannot recover.
type Override struct {
	Hours   float64
	Flagged bool
}

// Session is one resolved work interval.
type Session struct {
	In      string
	Out     string
	Hours   float64
	Flagged bool
}

// Resolver turns (in, out) clock pairs into durations. It is pure: the
// same pair always resolves the same way.
type Resolver struct {
	overrides  map[PairKey]Override
	suspicious map[string]struct{}
	maxShift   time.Duration
}

// NewResolver builds a resolver from immutable configuration tables.
func NewResolver(cfg Config) *Resolver {
	susp := make(map[string]struct{}, len(cfg.SuspiciousClocks))
	for _, c := range cfg.SuspiciousClocks {
		susp[c] = struct{}{}
	}
	overrides := make(map[PairKey]Override, len(cfg.Overrides))
	for k, v := range cfg.Overrides {
		overrides[k] = v
	}
	maxShift := cfg.MaxShift
	if maxShift <= 0 {
		maxShift = 14 * time.Hour
	}
	return &Resolver{overrides: overrides, suspicious: susp, maxShift: maxShift}
}

// Resolve picks the most plausible interpretation of an (in, out) pair.
// Forced overrides win outright. Otherwise each end is tried as AM and PM,
// the out end additionally rolled into the next day, and the smallest
// positive duration within the plausibility window is chosen (first
// candidate wins ties). Returns ErrNoShift when nothing qualifies.
func (r *Resolver) Resolve(in, out string) (Session, error) {
	if o, ok := r.overrides[PairKey{In: in, Out: out}]; ok {
		return Session{In: in, Out: out, Hours: o.Hours, Flagged: o.Flagged}, nil
	}

	inClock, err := parseClock(in)
	if err != nil {
		return Session{}, err
	}
	outClock, err := parseClock(out)
	if err != nil {
		return Session{}, err
	}

	inAM, inPM := withMeridiem(inClock, false), withMeridiem(inClock, true)
	outAM, outPM := withMeridiem(outClock, false), withMeridiem(outClock, true)
	candidates := [][2]time.Time{
		{inAM, outAM},
		{inAM, outPM},
	}
	if inPM.Before(outPM) {
		candidates = append(candidates, [2]time.Time{inPM, outPM})
	}
	candidates = append(candidates,
		[2]time.Time{inPM, outAM.Add(24 * time.Hour)},
		[2]time.Time{inPM, outPM.Add(24 * time.Hour)},
	)

	best := time.Duration(-1)
	for _, c := range candidates {
		d := c[1].Sub(c[0])
		if d <= 0 || d > r.maxShift {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return Session{}, fmt.Errorf("%w for %s-%s", ErrNoShift, in, out)
	}

	return Session{
		In:      in,
		Out:     out,
		Hours:   quarterHours(best),
		Flagged: r.flagged(in, out),
	}, nil
}

// flagged reports whether the pair matches the suspicious early-leave
// pattern: both ends in the late-morning window and in before out on the
// clock face, suggesting the shift was much shorter than intended.
func (r *Resolver) flagged(in, out string) bool {
	if _, ok := r.suspicious[in]; !ok {
		return false
	}
	if _, ok := r.suspicious[out]; !ok {
		return false
	}
	return in < out
}

// quarterHours rounds a duration to quarter-hour units: leftover minutes
// of 8-14 round up to the next quarter, 0-7 round down.
func quarterHours(d time.Duration) float64 {
	mins := int(d.Minutes())
	whole := mins / 60
	leftover := mins % 60
	return float64(whole) + 0.25*float64((leftover+7)/15)
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad clock value %q: %w", s, err)
	}
	return t, nil
}

// withMeridiem reinterprets a bare 24-hour-looking clock value in a
// 12-hour context: hour 0 becomes 12 under PM, 1-11 gain 12 under PM,
// 12 becomes 0 under AM.
func withMeridiem(t time.Time, pm bool) time.Time {
	h := t.Hour()
	switch {
	case pm && h == 0:
		return t.Add(12 * time.Hour)
	case pm && h >= 1 && h <= 11:
		return t.Add(12 * time.Hour)
	case !pm && h == 12:
		return t.Add(-12 * time.Hour)
	}
	return t
}
