package timesheet

// pairState tracks which label, if any, governs the next time token.
type pairState int

const (
	stateIdle pairState = iota
	stateExpectIn
	stateExpectOut
)

// Pair consumes an ordered token sequence and emits (in, out) pairs.
// Rows with explicit IN/OUT labels follow the labels; rows with bare
// times alternate implicitly. A trailing IN with no matching OUT is
// discarded and returned as unmatched.
func Pair(tokens []Token) (pairs []PairKey, unmatched string) {
	state := stateIdle
	openIn := ""
	for _, tok := range tokens {
		switch tok.Kind {
		case LabelToken:
			if tok.Value == "IN" {
				state = stateExpectIn
			} else {
				state = stateExpectOut
			}
		case TimeToken:
			switch {
			case state == stateExpectIn:
				openIn = tok.Value
				state = stateIdle
			case state == stateExpectOut && openIn != "":
				pairs = append(pairs, PairKey{In: openIn, Out: tok.Value})
				openIn = ""
				state = stateIdle
			case openIn == "":
				// Implicit IN: an unlabeled time opens a session.
				openIn = tok.Value
			default:
				// Implicit OUT: an open IN exists, close it.
				pairs = append(pairs, PairKey{In: openIn, Out: tok.Value})
				openIn = ""
			}
		}
	}
	return pairs, openIn
}
