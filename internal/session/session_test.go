package session

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statementlab/internal/catalog"
	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/payload"
	"github.com/cleared-dev/statementlab/internal/placement"
	"github.com/cleared-dev/statementlab/internal/progress"
	"github.com/cleared-dev/statementlab/internal/zones"
)

func newSession(t *testing.T, st model.StatementType, opts ...Option) *Session {
	t.Helper()
	s, err := New(catalog.DefaultChart(), zones.Default(), st, opts...)
	require.NoError(t, err)
	return s
}

func mustAccount(t *testing.T, s *Session, title string) model.Account {
	t.Helper()
	a, ok := s.Account(title)
	require.True(t, ok, "account %q not in %s", title, s.Statement())
	return a
}

func TestNew_FreshState(t *testing.T) {
	s := newSession(t, model.BalanceSheet)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, model.BalanceSheet, s.Statement())
	assert.Len(t, s.Zones(), 5)
	assert.Len(t, s.Universe(), 30)
	assert.Equal(t, progress.Report{Placed: 0, Expected: 30}, s.Progress())
}

func TestNew_UnknownStatement(t *testing.T) {
	_, err := New(catalog.DefaultChart(), zones.Default(), "ledger")
	require.Error(t, err)
}

func TestPlace_CurrentAssetAcceptedLiabilityRejected(t *testing.T) {
	s := newSession(t, model.BalanceSheet)

	out := s.Place(mustAccount(t, s, "Cash"), "current-assets")
	assert.True(t, out.Accepted())

	before := s.Snapshot()
	out = s.Place(mustAccount(t, s, "Accounts Payable"), "current-assets")
	assert.Equal(t, placement.ReasonMismatch, out.Reason)
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("rejected placement changed state (-before +after):\n%s", diff)
	}
}

func TestPlace_PlantAssetIsNonCurrent(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	assert.True(t, s.Place(mustAccount(t, s, "Equipment"), "non-current-assets").Accepted())
}

func TestProgress_CountsOnlyActiveStatement(t *testing.T) {
	cat, err := catalog.NewService([]model.Account{
		{Title: "Cash", Classification: "Current Asset", Statement: model.CatalogBalanceSheet},
		{Title: "Supplies", Classification: "Current Asset", Statement: model.CatalogBalanceSheet},
		{Title: "Land", Classification: "Plant Asset", Statement: model.CatalogBalanceSheet},
		{Title: "Patents", Classification: "Intangible Asset", Statement: model.CatalogBalanceSheet},
		{Title: "Accounts Payable", Classification: "Current Liability", Statement: model.CatalogBalanceSheet},
		{Title: "Interest Payable", Classification: "Current Liability", Statement: model.CatalogBalanceSheet},
		{Title: "Bonds Payable", Classification: "Non-Current Liability", Statement: model.CatalogBalanceSheet},
		{Title: "Mortgage Payable", Classification: "Non-Current Liability", Statement: model.CatalogBalanceSheet},
		{Title: "Common Stock", Classification: "Equity", Statement: model.CatalogBalanceSheet},
		{Title: "Retained Earnings", Classification: "Equity", Statement: model.CatalogBalanceSheet},
		{Title: "Sales Revenue", Classification: "Revenue", Statement: model.CatalogIncomeStatement},
	})
	require.NoError(t, err)
	s, err := New(cat, zones.Default(), model.BalanceSheet)
	require.NoError(t, err)

	require.True(t, s.Place(mustAccount(t, s, "Cash"), "current-assets").Accepted())
	require.True(t, s.Place(mustAccount(t, s, "Land"), "non-current-assets").Accepted())
	require.True(t, s.Place(mustAccount(t, s, "Common Stock"), "equity").Accepted())

	assert.Equal(t, progress.Report{Placed: 3, Expected: 10}, s.Progress())
}

func TestSwitch_ClearsPlacements(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	require.True(t, s.Place(mustAccount(t, s, "Cash"), "current-assets").Accepted())
	require.True(t, s.Place(mustAccount(t, s, "Equipment"), "non-current-assets").Accepted())

	require.NoError(t, s.Switch(model.IncomeStatement))

	assert.Equal(t, model.IncomeStatement, s.Statement())
	assert.Equal(t, progress.Report{Placed: 0, Expected: 17}, s.Progress())
	snap := s.Snapshot()
	assert.Len(t, snap, 4)
	_, hasBS := snap["current-assets"]
	assert.False(t, hasBS, "balance sheet zones must not carry over")
	for _, a := range s.Universe() {
		assert.Equal(t, model.CatalogIncomeStatement, a.Statement)
	}

	// Switching back starts from an empty store too.
	require.NoError(t, s.Switch(model.BalanceSheet))
	assert.Equal(t, 0, s.Progress().Placed)
}

func TestSolutions_IgnorePlacements(t *testing.T) {
	s := newSession(t, model.IncomeStatement)
	before := s.Solutions()

	require.True(t, s.Place(mustAccount(t, s, "Sales Revenue"), "revenues").Accepted())
	after := s.Solutions()

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("solutions depend on placement state (-before +after):\n%s", diff)
	}
	require.Equal(t, "revenues", after[0].Zone.ID)
	var got []string
	for _, a := range after[0].Accounts {
		got = append(got, a.Title)
	}
	assert.Equal(t, []string{"Sales Revenue", "Service Revenue", "Sales Returns and Allowances", "Sales Discounts"}, got)
}

func TestPlace_AccountFromOtherStatement(t *testing.T) {
	s := newSession(t, model.IncomeStatement)
	cash, ok := catalog.DefaultChart().Get(model.BalanceSheet, "Cash")
	require.True(t, ok)

	assert.Equal(t, placement.ReasonUnknownZone, s.Place(cash, "current-assets").Reason)
	assert.Equal(t, placement.ReasonNotInStatement, s.Place(cash, "revenues").Reason)
	assert.Equal(t, 0, s.Progress().Placed)
}

func TestDrop_ForgedPayloadRejected(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	cash := mustAccount(t, s, "Cash")
	before := s.Snapshot()

	ghost := model.Account{Title: "Ghost", Classification: "Current Asset", Statement: model.CatalogIncomeStatement, NormalBalance: "Debit"}
	altered := cash
	altered.NormalBalance = "Credit"

	for _, a := range []model.Account{ghost, altered} {
		data, err := payload.Encode(a)
		require.NoError(t, err)

		out := s.Drop(data, "current-assets")
		assert.Equal(t, placement.ReasonNotInStatement, out.Reason, a.Title)
		assert.Equal(t, "current-assets", out.Zone.ID)
		assert.Contains(t, out.Message(), "is not an account on this statement")
	}

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("forged drop changed state (-before +after):\n%s", diff)
	}
	assert.Equal(t, progress.Report{Placed: 0, Expected: 30}, s.Progress())
	assert.Len(t, s.Pool(""), 30)

	// The real record still places normally.
	assert.True(t, s.Place(cash, "current-assets").Accepted())
	assert.Equal(t, []model.Account{cash}, s.Snapshot()["current-assets"])
}

func TestReset(t *testing.T) {
	s := newSession(t, model.CashFlow)
	require.True(t, s.Place(mustAccount(t, s, "Interest Paid"), "operating").Accepted())

	assert.Equal(t, "Canvas cleared", s.Reset())
	assert.Equal(t, progress.Report{Placed: 0, Expected: 12}, s.Progress())
	for _, z := range s.Zones() {
		assert.Empty(t, s.Snapshot()[z.ID])
	}
}

func TestRemove(t *testing.T) {
	s := newSession(t, model.CashFlow)
	a := mustAccount(t, s, "Sale of Land")
	require.True(t, s.Place(a, "investing").Accepted())

	assert.False(t, s.Remove(a, "financing"))
	assert.True(t, s.Remove(a, "investing"))
	assert.Equal(t, 0, s.Progress().Placed)
}

func TestPool(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	require.Len(t, s.Pool(""), 30)

	require.True(t, s.Place(mustAccount(t, s, "Accounts Payable"), "current-liabilities").Accepted())
	pool := s.Pool("")
	assert.Len(t, pool, 29)
	for _, a := range pool {
		assert.NotEqual(t, "Accounts Payable", a.Title)
	}

	var got []string
	for _, a := range s.Pool("  PAYABLE ") {
		got = append(got, a.Title)
	}
	assert.Equal(t, []string{"Salaries and Wages Payable", "Interest Payable", "Income Taxes Payable", "Notes Payable", "Bonds Payable", "Mortgage Payable"}, got)

	assert.Empty(t, s.Pool("zzz"))
	assert.Equal(t, "No accounts found", PoolMessage("zzz"))
	assert.Equal(t, "All accounts placed!", PoolMessage(""))
}

func TestDragAndDrop(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	cash := mustAccount(t, s, "Cash")

	data, err := s.BeginDrag(cash)
	require.NoError(t, err)
	assert.True(t, s.Dragging())

	out := s.Drop(data, "current-assets")
	assert.True(t, out.Accepted())
	assert.False(t, s.Dragging())
	assert.Equal(t, []model.Account{cash}, s.Snapshot()["current-assets"])
}

func TestDrag_CancelLeavesStateUntouched(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	before := s.Snapshot()

	_, err := s.BeginDrag(mustAccount(t, s, "Cash"))
	require.NoError(t, err)
	s.CancelDrag()

	assert.False(t, s.Dragging())
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("cancelled drag changed state (-before +after):\n%s", diff)
	}
}

func TestDrop_MalformedPayload(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	s := newSession(t, model.BalanceSheet, WithLogger(logger))
	before := s.Snapshot()

	for _, data := range [][]byte{nil, []byte("{"), []byte(`{"accountTitle":"Cash"}`)} {
		out := s.Drop(data, "current-assets")
		assert.Equal(t, placement.ReasonMalformedPayload, out.Reason)
		assert.Error(t, out.Err())
	}

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("malformed drop changed state (-before +after):\n%s", diff)
	}
	assert.Contains(t, buf.String(), "ignoring drop")
}

func TestDrop_UnknownZone(t *testing.T) {
	s := newSession(t, model.BalanceSheet)
	data, err := s.BeginDrag(mustAccount(t, s, "Cash"))
	require.NoError(t, err)

	out := s.Drop(data, "nowhere")
	assert.Equal(t, placement.ReasonUnknownZone, out.Reason)
	assert.Equal(t, 0, s.Progress().Placed)
}
