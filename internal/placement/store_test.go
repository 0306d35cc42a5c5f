package placement

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/zones"
)

var (
	cash      = model.Account{Title: "Cash", Classification: "Current Asset", Statement: model.CatalogBalanceSheet, NormalBalance: "Debit"}
	payable   = model.Account{Title: "Accounts Payable", Classification: "Current Liability", Statement: model.CatalogBalanceSheet, NormalBalance: "Credit"}
	equipment = model.Account{Title: "Equipment", Classification: "Plant Asset", Statement: model.CatalogBalanceSheet, NormalBalance: "Debit"}
	investmts = model.Account{Title: "Long-term Investments", Classification: "Non-Current Asset", Statement: model.CatalogBalanceSheet, NormalBalance: "Debit"}
)

func newBalanceSheetStore() *Store {
	return NewStore(zones.Default().Zones(model.BalanceSheet))
}

func TestPlace_Accepted(t *testing.T) {
	s := newBalanceSheetStore()

	out := s.Place(cash, "current-assets")
	require.True(t, out.Accepted())
	assert.Equal(t, "Correct! Cash → Current Assets", out.Message())
	assert.NoError(t, out.Err())

	snap := s.Snapshot()
	assert.Equal(t, []model.Account{cash}, snap["current-assets"])
	assert.True(t, s.IsPlaced("Cash"))
	zone, ok := s.ZoneOf("Cash")
	require.True(t, ok)
	assert.Equal(t, "current-assets", zone)
}

func TestPlace_MismatchLeavesStoreUnchanged(t *testing.T) {
	s := newBalanceSheetStore()
	before := s.Snapshot()

	out := s.Place(payable, "current-assets")
	assert.False(t, out.Accepted())
	assert.Equal(t, ReasonMismatch, out.Reason)
	assert.Equal(t, "Incorrect placement. Accounts Payable doesn't belong in Current Assets", out.Message())

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("store changed after rejection (-before +after):\n%s", diff)
	}
	assert.False(t, s.IsPlaced("Accounts Payable"))
}

func TestPlace_PlantAssetIntoNonCurrent(t *testing.T) {
	s := newBalanceSheetStore()

	out := s.Place(equipment, "non-current-assets")
	assert.True(t, out.Accepted())
}

func TestPlace_NonCurrentAssetNotIntoCurrent(t *testing.T) {
	s := newBalanceSheetStore()

	out := s.Place(investmts, "current-assets")
	assert.Equal(t, ReasonMismatch, out.Reason)
	assert.True(t, s.Place(investmts, "non-current-assets").Accepted())
}

func TestPlace_UnknownZone(t *testing.T) {
	s := newBalanceSheetStore()

	out := s.Place(cash, "revenues")
	assert.Equal(t, ReasonUnknownZone, out.Reason)
	assert.Equal(t, 0, s.Len())

	var rerr *RejectionError
	require.True(t, errors.As(out.Err(), &rerr))
	assert.Equal(t, ReasonUnknownZone, rerr.Reason)
	assert.Equal(t, "revenues", rerr.ZoneID)
}

func TestPlace_DuplicateRejected(t *testing.T) {
	s := newBalanceSheetStore()
	require.True(t, s.Place(cash, "current-assets").Accepted())

	out := s.Place(cash, "current-assets")
	assert.Equal(t, ReasonDuplicate, out.Reason)
	assert.Equal(t, "current-assets", out.PlacedIn)

	// A different zone that also matches must not take a second copy.
	custom := NewStore([]model.Zone{
		{ID: "a", Label: "A", MatchRules: []string{"Current Asset"}},
		{ID: "b", Label: "B", MatchRules: []string{"Asset"}},
	})
	require.True(t, custom.Place(cash, "a").Accepted())
	out = custom.Place(cash, "b")
	assert.Equal(t, ReasonDuplicate, out.Reason)
	assert.Empty(t, custom.Snapshot()["b"])
	assert.Equal(t, 1, custom.Snapshot().Count())
}

func TestRemove(t *testing.T) {
	s := newBalanceSheetStore()
	require.True(t, s.Place(cash, "current-assets").Accepted())

	assert.False(t, s.Remove(cash, "equity"), "not in that zone")
	assert.True(t, s.Remove(cash, "current-assets"))
	assert.False(t, s.Remove(cash, "current-assets"), "second remove is a no-op")
	assert.False(t, s.IsPlaced("Cash"))
	assert.Empty(t, s.Snapshot()["current-assets"])

	// Removed accounts can be placed again.
	assert.True(t, s.Place(cash, "current-assets").Accepted())
}

func TestRemove_PreservesOrder(t *testing.T) {
	s := newBalanceSheetStore()
	a := model.Account{Title: "A", Classification: "Current Asset"}
	b := model.Account{Title: "B", Classification: "Current Asset"}
	c := model.Account{Title: "C", Classification: "Current Asset"}
	for _, acct := range []model.Account{a, b, c} {
		require.True(t, s.Place(acct, "current-assets").Accepted())
	}

	s.Remove(b, "current-assets")
	assert.Equal(t, []model.Account{a, c}, s.Snapshot()["current-assets"])
}

func TestReset(t *testing.T) {
	s := newBalanceSheetStore()
	s.Place(cash, "current-assets")
	s.Place(equipment, "non-current-assets")

	s.Reset()

	snap := s.Snapshot()
	require.Len(t, snap, 5)
	for _, z := range s.Zones() {
		got, ok := snap[z.ID]
		require.True(t, ok, "zone %s missing from snapshot", z.ID)
		assert.Empty(t, got)
	}
	assert.Equal(t, 0, s.Len())
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := newBalanceSheetStore()
	s.Place(cash, "current-assets")

	snap := s.Snapshot()
	snap["current-assets"][0].Title = "Changed"
	snap["current-assets"] = append(snap["current-assets"], payable)

	assert.Equal(t, []model.Account{cash}, s.Snapshot()["current-assets"])
}

func TestUniquenessAcrossSequence(t *testing.T) {
	s := newBalanceSheetStore()
	universe := []model.Account{cash, payable, equipment, investmts}
	zoneIDs := []string{"current-assets", "non-current-assets", "current-liabilities", "equity"}

	// Throw every account at every zone twice; no title may end up in two zones.
	for range 2 {
		for _, a := range universe {
			for _, z := range zoneIDs {
				s.Place(a, z)
			}
		}
	}

	seen := make(map[string]string)
	for zoneID, accts := range s.Snapshot() {
		for _, a := range accts {
			prev, dup := seen[a.Title]
			assert.False(t, dup, "%s in both %s and %s", a.Title, prev, zoneID)
			seen[a.Title] = zoneID
		}
	}
	assert.Len(t, seen, 4)
}
