package models

// LookupState is a step of one customer lookup.
type LookupState string

const (
	LookupIdle             LookupState = "idle"
	LookupSearching        LookupState = "searching"
	LookupFound            LookupState = "found"
	LookupNotFound         LookupState = "not_found"
	LookupCreating         LookupState = "creating"
	LookupCreated          LookupState = "created"
	LookupCreateFailed     LookupState = "create_failed"
	LookupFailed           LookupState = "failed"
	LookupRendered         LookupState = "rendered"
	LookupNotFoundRendered LookupState = "not_found_rendered"
)

// LookupResult records what one lookup did. Err carries the classified
// failure, if any; it has already been shown to the user.
type LookupResult struct {
	Criteria        SearchCriteria    `json:"criteria"`
	CreateIfMissing bool              `json:"create_if_missing"`
	Token           uint64            `json:"token"`
	Outcome         *SearchOutcome    `json:"outcome,omitempty"`
	States          []LookupState     `json:"states"`
	Render          RenderInstruction `json:"render"`
	Discarded       bool              `json:"discarded,omitempty"`
	Err             error             `json:"-"`
}

func NewLookupResult(criteria SearchCriteria, createIfMissing bool) *LookupResult {
	return &LookupResult{
		Criteria:        criteria,
		CreateIfMissing: createIfMissing,
		States:          []LookupState{LookupIdle},
	}
}

func (r *LookupResult) Advance(state LookupState) {
	r.States = append(r.States, state)
}

// State returns the most recent state.
func (r *LookupResult) State() LookupState {
	return r.States[len(r.States)-1]
}

// Created reports whether a fallback customer was created.
func (r *LookupResult) Created() bool {
	for _, s := range r.States {
		if s == LookupCreated {
			return true
		}
	}
	return false
}

// ActionResult is the outcome of a single request/render action.
type ActionResult struct {
	Action string            `json:"action"`
	Region Region            `json:"region"`
	Render RenderInstruction `json:"render"`
	Err    error             `json:"-"`
}
