package model

// Account is one line item from the chart of accounts. Title is its identity
// within a statement's universe.
type Account struct {
	Title          string
	Classification string
	Statement      string // catalog literal, e.g. "Income Statement"
	NormalBalance  string
}

// StatementType returns the statement the account belongs to.
func (a Account) StatementType() (StatementType, bool) {
	return StatementFromCatalog(a.Statement)
}
