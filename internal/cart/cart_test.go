package cart

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/storefront/internal/db"
	"github.com/bookhaven/storefront/internal/storage"
)

func item(sku string, price float64) Item {
	return Item{SKU: sku, Name: "name-" + sku, Desc: "desc-" + sku, Price: NewPrice(price)}
}

func skus(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.SKU
	}
	return out
}

func TestReadEmptyAndMalformed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  *string
	}{
		{"absent", nil},
		{"empty string", ptr("")},
		{"unparsable", ptr("{not json")},
		{"object", ptr(`{"sku":"a"}`)},
		{"number", ptr("42")},
		{"null", ptr("null")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := storage.NewMemory()
			if tt.raw != nil {
				require.NoError(t, slots.Set(ctx, storage.KeyCart, *tt.raw))
			}
			items, err := NewStore(slots).Read(ctx)
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func ptr(s string) *string { return &s }

func TestAddAppendsInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())

	require.NoError(t, store.Add(ctx, item("a", 1)))
	require.NoError(t, store.Add(ctx, item("b", 2)))
	require.NoError(t, store.Add(ctx, item("a", 1)))

	items, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, skus(items))
}

func TestRemoveAtDuplicatesArePositional(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	require.NoError(t, store.Write(ctx, []Item{item("a", 1), item("a", 2), item("a", 3)}))

	require.NoError(t, store.RemoveAt(ctx, 1))

	items, err := store.Read(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	first, _ := items[0].Price.Amount()
	second, _ := items[1].Price.Amount()
	assert.Equal(t, 1.0, first)
	assert.Equal(t, 3.0, second)
}

func TestRemoveAtOutOfRangeIsNoop(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()
	store := NewStore(slots)
	require.NoError(t, store.Write(ctx, []Item{item("a", 1)}))
	before, _, _ := slots.Get(ctx, storage.KeyCart)

	for _, idx := range []int{-1, 1, 100} {
		require.NoError(t, store.RemoveAt(ctx, idx))
	}

	after, _, _ := slots.Get(ctx, storage.KeyCart)
	assert.Equal(t, before, after)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()
	store := NewStore(slots)
	require.NoError(t, store.Add(ctx, item("a", 1)))

	require.NoError(t, store.Clear(ctx))

	raw, ok, _ := slots.Get(ctx, storage.KeyCart)
	assert.True(t, ok)
	assert.Equal(t, "[]", raw)
}

// TestOperationsMatchReferenceModel replays random add/removeAt/clear
// sequences against a plain slice.
func TestOperationsMatchReferenceModel(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		store := NewStore(storage.NewMemory())
		var model []string

		for step := 0; step < 40; step++ {
			switch op := rng.Intn(10); {
			case op < 6:
				sku := string(rune('a' + rng.Intn(4)))
				require.NoError(t, store.Add(ctx, item(sku, float64(rng.Intn(50)))))
				model = append(model, sku)
			case op < 9:
				idx := rng.Intn(len(model)+3) - 1
				require.NoError(t, store.RemoveAt(ctx, idx))
				if idx >= 0 && idx < len(model) {
					model = append(model[:idx], model[idx+1:]...)
				}
			default:
				require.NoError(t, store.Clear(ctx))
				model = nil
			}

			items, err := store.Read(ctx)
			require.NoError(t, err)
			if model == nil {
				require.Empty(t, items, "run %d step %d", run, step)
			} else {
				require.Equal(t, model, skus(items), "run %d step %d", run, step)
			}
		}
	}
}

func TestStoreOverSQLiteProfile(t *testing.T) {
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	store := NewStore(storage.NewProfile(database, "profile-1"))
	require.NoError(t, store.Add(ctx, item("a", 10)))
	require.NoError(t, store.Add(ctx, item("b", 5.5)))

	// A fresh Store over the same profile sees the persisted list.
	items, err := NewStore(storage.NewProfile(database, "profile-1")).Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, skus(items))
	assert.Equal(t, "$15.50", Money(Total(items)))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{3, "$3.00"},
		{3.0, "$3.00"},
		{15.5, "$15.50"},
		{"2.5", "$2.50"},
		{" 7 ", "$7.00"},
		{"", "$0.00"},
		{"abc", "$0.00"},
		{"NaN", "$0.00"},
		{math.NaN(), "$0.00"},
		{math.Inf(1), "$0.00"},
		{nil, "$0.00"},
		{struct{}{}, "$0.00"},
		{json.Number("4.25"), "$4.25"},
		{NewPrice(9.99), "$9.99"},
		{Price{}, "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%#v)", tt.in)
	}

	// Either rounding of the binary value of 2.005 is acceptable.
	assert.Contains(t, []string{"$2.00", "$2.01"}, Money("2.005"))
}

func TestTotal(t *testing.T) {
	items := []Item{item("a", 10), item("b", 5.5)}
	assert.Equal(t, "$15.50", Money(Total(items)))
	assert.Equal(t, "$0.00", Money(Total(nil)))
}

func TestTolerantPriceDecoding(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemory()
	raw := `[{"sku":"a","price":10},{"sku":"b","price":"5.5"},{"sku":"c","price":"free"},{"sku":"d"},7]`
	require.NoError(t, slots.Set(ctx, storage.KeyCart, raw))

	store := NewStore(slots)
	items, err := store.Read(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)

	assert.Equal(t, "$10.00", Money(items[0].Price))
	assert.Equal(t, "$5.50", Money(items[1].Price))
	assert.Equal(t, "$0.00", Money(items[2].Price))
	assert.Equal(t, "$0.00", Money(items[3].Price))
	assert.Equal(t, "", items[4].SKU)
	assert.Equal(t, "$15.50", Money(Total(items)))

	// Non-numeric prices survive a rewrite unchanged.
	require.NoError(t, store.RemoveAt(ctx, 4))
	items, err = store.Read(ctx)
	require.NoError(t, err)
	out, err := json.Marshal(items[2].Price)
	require.NoError(t, err)
	assert.Equal(t, `"free"`, string(out))
}
