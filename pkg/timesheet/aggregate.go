package timesheet

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Employee is one recognized row owner with their resolved sessions.
// TotalHours is recomputed after every mutation, never trusted stale.
type Employee struct {
	Name       string
	Sessions   []Session
	TotalHours float64
}

// Row is one timesheet table row handed to the aggregator: the identity
// column text plus the remaining cell texts in column order.
type Row struct {
	Name  string
	Cells []string
}

// Sheet aggregates resolved sessions per employee and collects the
// diagnostics produced along the way.
type Sheet struct {
	resolver  *Resolver
	known     map[string]struct{}
	employees map[string]*Employee
	diags     []Diagnostic
}

// NewSheet builds an empty sheet with the given tables.
func NewSheet(cfg Config) *Sheet {
	known := make(map[string]struct{}, len(cfg.KnownNames))
	for _, n := range cfg.KnownNames {
		known[strings.ToLower(n)] = struct{}{}
	}
	return &Sheet{
		resolver:  NewResolver(cfg),
		known:     known,
		employees: make(map[string]*Employee),
	}
}

// Build runs the full row pipeline (tokenize, pair, resolve, aggregate)
// over ordered table rows. Rows with unrecognized names are skipped; all
// other anomalies drop only the affected token or pair.
func Build(rows []Row, cfg Config) *Sheet {
	sh := NewSheet(cfg)
	for _, row := range rows {
		sh.AddRow(row)
	}
	return sh
}

// AddRow processes one table row.
func (s *Sheet) AddRow(row Row) {
	norm := strings.ToLower(strings.TrimSpace(row.Name))
	if _, ok := s.known[norm]; !ok {
		if norm != "" {
			s.diags = append(s.diags, Diagnostic{Kind: DiagUnknownName, Detail: row.Name})
		}
		return
	}
	name := capitalize(norm)
	emp := s.ensure(name)

	tokens, rejected := TokenizeRow(row.Cells)
	for _, frag := range rejected {
		s.diags = append(s.diags, Diagnostic{Kind: DiagDroppedToken, Employee: name, Detail: frag})
	}

	pairs, unmatched := Pair(tokens)
	if unmatched != "" {
		s.diags = append(s.diags, Diagnostic{Kind: DiagUnmatchedIn, Employee: name, Detail: unmatched})
	}
	for _, p := range pairs {
		sess, err := s.resolver.Resolve(p.In, p.Out)
		if err != nil {
			s.diags = append(s.diags, Diagnostic{Kind: DiagUnresolvedPair, Employee: name, Detail: err.Error()})
			continue
		}
		emp.Sessions = append(emp.Sessions, sess)
	}
	emp.recomputeTotal()
}

// Add appends a session to an employee, creating the record if needed,
// and recomputes the total.
func (s *Sheet) Add(name string, sess Session) {
	emp := s.ensure(capitalize(strings.ToLower(strings.TrimSpace(name))))
	emp.Sessions = append(emp.Sessions, sess)
	emp.recomputeTotal()
}

// Replace swaps the session at index i and recomputes the total.
func (s *Sheet) Replace(name string, i int, sess Session) error {
	emp, ok := s.employees[capitalize(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return fmt.Errorf("no employee %q", name)
	}
	if i < 0 || i >= len(emp.Sessions) {
		return fmt.Errorf("session index %d out of range for %s", i, emp.Name)
	}
	emp.Sessions[i] = sess
	emp.recomputeTotal()
	return nil
}

// Employees returns the records sorted by name.
func (s *Sheet) Employees() []*Employee {
	names := make([]string, 0, len(s.employees))
	for n := range s.employees {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Employee, 0, len(names))
	for _, n := range names {
		out = append(out, s.employees[n])
	}
	return out
}

// Diagnostics returns the anomalies recorded so far, in order.
func (s *Sheet) Diagnostics() []Diagnostic {
	return s.diags
}

func (s *Sheet) ensure(name string) *Employee {
	if emp, ok := s.employees[name]; ok {
		return emp
	}
	emp := &Employee{Name: name}
	s.employees[name] = emp
	return emp
}

func (e *Employee) recomputeTotal() {
	sum := 0.0
	for _, sess := range e.Sessions {
		sum += sess.Hours
	}
	e.TotalHours = round2(sum)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
