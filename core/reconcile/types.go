package reconcile

// Strictness is how a candidate's type must relate to the requested types.
type Strictness string

const (
	StrictShould Strictness = "should"
	StrictAll    Strictness = "all"
	StrictAny    Strictness = "any"
)

// Feature is one scored piece of evidence for a candidate: a full-text hit on
// a property.
type Feature struct {
	// ID is the property the hit originates from.
	ID string `json:"id"`
	// Value is 1.0 for a verbatim match, the partial match coefficient otherwise.
	Value float64 `json:"value"`
}

// TypeRef is a type a candidate belongs to.
type TypeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Candidate is a ranked match of a reconciliation query.
type Candidate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        []TypeRef `json:"type"`
	Score       float64   `json:"score"`
	Match       bool      `json:"match"`
	Features    []Feature `json:"features"`
}

// Suggestion is an entity offered by the typeahead endpoint. It carries no score.
type Suggestion struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Notable     []TypeRef `json:"notable"`
}

// PropertyConstraint is a property value the caller expects on the entity.
type PropertyConstraint struct {
	PID string `json:"pid"`
	V   any    `json:"v"`
}

// Query is a decoded reconciliation query.
type Query struct {
	// Text is matched against the full-text index.
	Text string
	// Types restricts candidates; never empty after NewQuery unless the catalog is.
	Types []string
	// Properties are accepted and reported back but take no part in retrieval.
	Properties []PropertyConstraint
	// Limit caps the candidate list.
	Limit int
	// Strict is accepted for protocol compatibility; every candidate has one
	// of Types regardless of its value.
	Strict Strictness
}

// SuggestQuery is a typeahead lookup.
type SuggestQuery struct {
	// Prefix is the literal text typed by the caller.
	Prefix string
	// Pattern is Prefix with LIKE wildcards escaped and a trailing wildcard.
	Pattern string
	// Types restricts suggestions.
	Types []string
}
