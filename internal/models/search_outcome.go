package models

// OutcomeKind tags a SearchOutcome.
type OutcomeKind string

const (
	OutcomeFound    OutcomeKind = "found"
	OutcomeNotFound OutcomeKind = "not_found"
)

// SearchOutcome is either Found(customers) or NotFound(message).
type SearchOutcome struct {
	Kind      OutcomeKind      `json:"kind"`
	Customers []CustomerRecord `json:"customers,omitempty"`
	Message   string           `json:"message,omitempty"`
}

func Found(customers []CustomerRecord) SearchOutcome {
	return SearchOutcome{Kind: OutcomeFound, Customers: customers}
}

func NotFound(message string) SearchOutcome {
	return SearchOutcome{Kind: OutcomeNotFound, Message: message}
}

func (o SearchOutcome) IsFound() bool {
	return o.Kind == OutcomeFound
}

func (o SearchOutcome) IsNotFound() bool {
	return o.Kind == OutcomeNotFound
}
