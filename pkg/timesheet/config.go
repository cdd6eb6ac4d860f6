package timesheet

import "time"

// Config carries the fixed lookup tables the pipeline depends on. It is
// read-only at run time; tests substitute their own tables.
type Config struct {
	// KnownNames is the roster of recognized first-column identities,
	// matched case-insensitively.
	KnownNames []string
	// Overrides pins durations for known ambiguous pairs.
	Overrides map[PairKey]Override
	// SuspiciousClocks is the set of clock values that mark a possible
	// early leave when both ends of a pair fall inside it.
	SuspiciousClocks []string
	// MaxShift is the longest plausible single shift. Zero means 14h.
	MaxShift time.Duration
}

// DefaultConfig returns the production tables: the crew roster (including
// the misspellings the scanner produces for some of them) and the two
// overnight pairs the heuristic misreads as one-hour day shifts.
func DefaultConfig() Config {
	return Config{
		KnownNames: []string{
			"katie", "lochlahn", "izzy", "iz", "summer", "julia", "curtis",
			"sam", "beks", "sophia", "owen", "debi", "jake", "molly", "gabby",
			"bek", "lochlan", "wil", "mally", "saphia", "awen",
		},
		Overrides: map[PairKey]Override{
			{In: "11:00", Out: "12:00"}: {Hours: 13.0, Flagged: true},
			{In: "11:45", Out: "12:00"}: {Hours: 12.25, Flagged: true},
		},
		SuspiciousClocks: []string{
			"10:00", "10:15", "10:30", "10:45",
			"11:00", "11:15", "11:30", "11:45",
			"12:00",
		},
		MaxShift: 14 * time.Hour,
	}
}
