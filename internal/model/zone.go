package model

// Zone is a named section of a statement that accepts accounts whose
// classification satisfies one of its match rules.
type Zone struct {
	ID         string
	Label      string
	MatchRules []string
}
