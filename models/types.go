package models

// Voting method names
const (
	MethodFPTP = "fptp"
	MethodSTV  = "stv"
)

// STV phases
const (
	PhaseSurplusTransfer = "surplus_transfer"
	PhaseElimination     = "elimination"
)

// Result types

type Winner struct {
	Name  string `json:"name"`
	Votes int    `json:"n_votes"` // count held when declared
}

// Round records one pass of an STV count.
type Round struct {
	Number     int            `json:"number"`
	Phase      string         `json:"phase"`
	Totals     map[string]int `json:"totals"`
	Elected    []string       `json:"elected,omitempty"`
	Eliminated []string       `json:"eliminated,omitempty"`
	Active     int            `json:"active"`    // votes still in the count
	Retained   int            `json:"retained"`  // quota votes kept by winners
	Exhausted  int            `json:"exhausted"` // cumulative
}

type Result struct {
	Method     string   `json:"method"`
	Seats      int      `json:"seats"`
	Ballots    int      `json:"ballots"`
	Quota      int      `json:"quota,omitempty"` // STV only
	Winners    []Winner `json:"winners"`
	Tie        bool     `json:"tie"`
	Incomplete bool     `json:"incomplete,omitempty"` // STV ran out of transferable votes
	Exhausted  int      `json:"exhausted,omitempty"`
	Rounds     []Round  `json:"rounds,omitempty"`
}

// WinnerNames lists winners in declaration order.
func (r Result) WinnerNames() []string {
	names := make([]string, len(r.Winners))
	for i, w := range r.Winners {
		names[i] = w.Name
	}
	return names
}

// Simulation types

type RegionResult struct {
	Region     string `json:"region"`
	Electorate int    `json:"electorate"`
	Result     Result `json:"result"`
}

type Report struct {
	RunID      string         `json:"run_id"`
	Country    string         `json:"country,omitempty"`
	Method     string         `json:"method"`
	Seats      int            `json:"seats"`
	Seed       uint64         `json:"seed"`
	Candidates []string       `json:"candidates"`
	Regions    []RegionResult `json:"regions"`
}

// BallotFile is the JSON document accepted by the CLI's -ballots flag.
// Ballots and candidates stay untyped so validation sees exactly what was
// written.
type BallotFile struct {
	Candidates []any `json:"candidates,omitempty"`
	Ballots    []any `json:"ballots"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
