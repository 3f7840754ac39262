package records

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shippy/internal/store"
	"shippy/internal/types"
)

func openProducts(t *testing.T) (*store.Store, *Collection[types.Product]) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	col, err := Open(st, store.KeyProducts, types.SampleProducts())
	require.NoError(t, err)
	return st, col
}

func TestOpenSeedsSampleProducts(t *testing.T) {
	_, col := openProducts(t)

	require.Equal(t, 10, col.Len())
	first := col.Items()[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Cotton T-Shirt", first.Name)
	assert.Equal(t, "T-Shirt", first.Category)
	assert.Equal(t, 150, first.Stock)
	assert.Equal(t, 599.0, first.Price)
	assert.Equal(t, "18%", first.GST)
	assert.Equal(t, "New", first.Condition)
}

func TestOpenPrefersStoredDataOverSeed(t *testing.T) {
	st, col := openProducts(t)
	col.Remove("1")

	again, err := Open(st, store.KeyProducts, types.SampleProducts())
	require.NoError(t, err)
	assert.Equal(t, 9, again.Len())
	_, found := again.Find("1")
	assert.False(t, found)
}

func TestAddAssignsFreshID(t *testing.T) {
	_, col := openProducts(t)

	draft := types.Product{Name: "Wool Scarf", Category: "Accessories", Stock: 20, Price: 499, GST: "5%", Condition: "New"}
	col.Add(draft)

	require.Equal(t, 11, col.Len())
	added := col.Items()[10]
	assert.NotEmpty(t, added.ID)
	assert.NotEqual(t, "10", added.ID)
	assert.Equal(t, "Wool Scarf", added.Name)
}

func TestAddRejectsBlankName(t *testing.T) {
	_, col := openProducts(t)

	col.Add(types.Product{Name: "   ", Category: "Shoes", Stock: 5})
	assert.Equal(t, 10, col.Len())
}

func TestUpdateChangesOnlyTargetedField(t *testing.T) {
	_, col := openProducts(t)
	before, found := col.Find("3")
	require.True(t, found)

	col.Update("3", "stock", 99)

	after, found := col.Find("3")
	require.True(t, found)
	assert.Equal(t, 99, after.Stock)

	want := before
	want.Stock = 99
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("unexpected field changes (-want +got):\n%s", diff)
	}
}

func TestUpdateCoercesStringInput(t *testing.T) {
	_, col := openProducts(t)

	// Form inputs arrive as strings.
	col.Update("2", "price", "849.50")
	col.Update("2", "stock", "7")

	p, _ := col.Find("2")
	assert.Equal(t, 849.50, p.Price)
	assert.Equal(t, 7, p.Stock)
}

func TestUpdateUnknownIDLeavesRecordsIntact(t *testing.T) {
	_, col := openProducts(t)
	before := append([]types.Product(nil), col.Items()...)

	col.Update("no-such-id", "name", "Ghost")

	if diff := cmp.Diff(before, col.Items()); diff != "" {
		t.Errorf("records changed (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	_, col := openProducts(t)

	col.Remove("5")
	assert.Equal(t, 9, col.Len())
	_, found := col.Find("5")
	assert.False(t, found)

	// Removing an absent id is harmless.
	col.Remove("5")
	assert.Equal(t, 9, col.Len())
}

func TestMutationsPersistAcrossReopen(t *testing.T) {
	st, col := openProducts(t)

	col.Add(types.Product{Name: "Gym Bag", Category: "Sports", Stock: 12, Price: 999, GST: "12%", Condition: "New"})
	col.Update("1", "name", "Premium Cotton T-Shirt")
	col.Remove("10")

	reopened, err := Open(st, store.KeyProducts, []types.Product(nil))
	require.NoError(t, err)
	assert.Equal(t, 10, reopened.Len())

	p, found := reopened.Find("1")
	require.True(t, found)
	assert.Equal(t, "Premium Cotton T-Shirt", p.Name)

	_, found = reopened.Find("10")
	assert.False(t, found)
}

func TestSingleEditSlot(t *testing.T) {
	_, col := openProducts(t)

	assert.Empty(t, col.EditingID())
	col.BeginEdit("2")
	assert.Equal(t, "2", col.EditingID())

	// A second edit replaces the first outright.
	col.BeginEdit("7")
	assert.Equal(t, "7", col.EditingID())

	col.EndEdit()
	assert.Empty(t, col.EditingID())
}

func TestTeamMemberValidationNeedsNameAndEmail(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	col, err := Open(st, store.KeyTeamMembers, types.SampleTeamMembers())
	require.NoError(t, err)
	require.Equal(t, 3, col.Len())

	col.Add(types.TeamMember{Name: "No Email", Role: "Intern"})
	assert.Equal(t, 3, col.Len())

	col.Add(types.TeamMember{Name: "Ada Lovelace", Email: "ada@shippy.com", Role: "Admin", JoinDate: "2025-09-01"})
	assert.Equal(t, 4, col.Len())
}
