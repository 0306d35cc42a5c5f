package catalog

import (
	"bytes"
	_ "embed"
)

//go:embed data/chart-of-accounts.json
var defaultChart []byte

// DefaultChart returns the built-in introductory chart of accounts.
func DefaultChart() *Service {
	accounts, err := ReadJSON(bytes.NewReader(defaultChart))
	if err != nil {
		panic("embedded chart of accounts: " + err.Error())
	}
	svc, err := NewService(accounts)
	if err != nil {
		panic("embedded chart of accounts: " + err.Error())
	}
	return svc
}

// DefaultChartJSON returns the raw embedded document.
func DefaultChartJSON() []byte {
	return bytes.Clone(defaultChart)
}
