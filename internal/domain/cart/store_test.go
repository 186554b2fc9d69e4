package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()

	mem := storage.NewMemoryStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	store := NewStore(mem, "cart-storage:test", logger)
	require.NoError(t, store.Load(context.Background()))
	return store, mem
}

func TestAdd_NewProduct(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, store.TotalItems())
	assert.InDelta(t, 10.00, store.TotalPrice(), 0.001)
}

func TestAdd_ExistingProductIncrementsQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	product := Product{ID: 1, Name: "X", Price: "10.00"}
	store.Add(ctx, product)
	store.Add(ctx, product)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 20.00, store.TotalPrice(), 0.001)
}

func TestRemove_QuantityOneDeletesLine(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})
	store.Remove(ctx, 1)

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
}

func TestRemove_DecrementsAboveOne(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	product := Product{ID: 1, Name: "X", Price: "10.00"}
	store.Add(ctx, product)
	store.Add(ctx, product)
	store.Remove(ctx, 1)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})
	before := store.Items()

	store.Remove(ctx, 99)

	assert.Equal(t, before, store.Items())
}

func TestIncreaseQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})
	store.IncreaseQuantity(ctx, 1)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Absent id does nothing
	store.IncreaseQuantity(ctx, 99)
	assert.Len(t, store.Items(), 1)
}

func TestDecreaseQuantity_PreservesOtherLines(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := Product{ID: 1, Name: "X", Price: "10.00"}
	store.Add(ctx, first)
	store.Add(ctx, first)
	store.Add(ctx, Product{ID: 2, Name: "Y", Price: "5.00"})

	store.DecreaseQuantity(ctx, 1)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestClear(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})
	store.Add(ctx, Product{ID: 2, Name: "Y", Price: "5.00"})
	store.Clear(ctx)

	assert.Empty(t, store.Items())

	// Persisted state is the empty collection, not an absent key
	data, err := mem.Load(ctx, "cart-storage:test")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestMutationSequence_MaintainsInvariants(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	products := []Product{
		{ID: 1, Name: "A", Price: "1.00"},
		{ID: 2, Name: "B", Price: "2.00"},
		{ID: 3, Name: "C", Price: "3.00"},
	}

	// Interleave adds and removes across ids
	for i := 0; i < 5; i++ {
		for _, p := range products {
			store.Add(ctx, p)
		}
	}
	for i := 0; i < 7; i++ {
		store.Remove(ctx, 2)
	}
	store.Remove(ctx, 3)
	store.Add(ctx, products[1])

	seen := make(map[int]int)
	for _, item := range store.Items() {
		_, dup := seen[item.ID]
		assert.False(t, dup, "duplicate line for id %d", item.ID)
		assert.GreaterOrEqual(t, item.Quantity, 1)
		seen[item.ID] = item.Quantity
	}

	// Net effect: id 1 added 5x; id 2 added 5x, removed to absent, added 1x;
	// id 3 added 5x, removed 1x.
	assert.Equal(t, 5, seen[1])
	assert.Equal(t, 1, seen[2])
	assert.Equal(t, 4, seen[3])
	assert.Equal(t, 10, store.TotalItems())
}

func TestTotalPrice_MalformedPriceContributesZero(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})
	store.Add(ctx, Product{ID: 2, Name: "Y", Price: "not-a-price"})

	assert.InDelta(t, 10.00, store.TotalPrice(), 0.001)
	assert.Equal(t, 2, store.TotalItems())
}

func TestTotalPrice_StripsCurrencySymbol(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "12.50 €"})
	store.Add(ctx, Product{ID: 1, Name: "X", Price: "12.50 €"})

	assert.InDelta(t, 25.00, store.TotalPrice(), 0.001)
}

func TestRoundTrip_ReloadReproducesCart(t *testing.T) {
	mem := storage.NewMemoryStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	ctx := context.Background()

	store := NewStore(mem, "cart-storage:roundtrip", logger)
	require.NoError(t, store.Load(ctx))

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00", Image: "x.png", Description: "first"})
	store.Add(ctx, Product{ID: 2, Name: "Y", Price: "5.25"})
	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})

	reloaded := NewStore(mem, "cart-storage:roundtrip", logger)
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.TotalItems(), reloaded.TotalItems())
	assert.InDelta(t, store.TotalPrice(), reloaded.TotalPrice(), 0.001)
}

func TestLoad_AbsentKeyYieldsEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.Zero(t, store.TotalPrice())
}

func TestLoad_DropsCorruptLines(t *testing.T) {
	mem := storage.NewMemoryStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	ctx := context.Background()

	// Duplicate ids and a zero quantity should not survive a reload
	persisted := []map[string]interface{}{
		{"id": 1, "name": "X", "price": "10.00", "quantity": 2},
		{"id": 1, "name": "X", "price": "10.00", "quantity": 3},
		{"id": 2, "name": "Y", "price": "5.00", "quantity": 0},
	}
	data, err := json.Marshal(persisted)
	require.NoError(t, err)
	require.NoError(t, mem.Save(ctx, "cart-storage:corrupt", data))

	store := NewStore(mem, "cart-storage:corrupt", logger)
	require.NoError(t, store.Load(ctx))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestLoad_UndecodableSnapshotStartsEmpty(t *testing.T) {
	mem := storage.NewMemoryStore()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	ctx := context.Background()

	require.NoError(t, mem.Save(ctx, "cart-storage:bad", []byte("{not json")))

	store := NewStore(mem, "cart-storage:bad", logger)
	require.NoError(t, store.Load(ctx))
	assert.Empty(t, store.Items())

	// The next mutation overwrites the bad snapshot
	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})

	reloaded := NewStore(mem, "cart-storage:bad", logger)
	require.NoError(t, reloaded.Load(ctx))
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
}

// failingStore always fails to save, simulating unavailable storage
type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}

func TestPersistenceFailure_DoesNotAbortMutation(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	ctx := context.Background()

	store := NewStore(failingStore{}, "cart-storage:failing", logger)
	require.NoError(t, store.Load(ctx))

	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})
	store.Add(ctx, Product{ID: 1, Name: "X", Price: "10.00"})

	// In-memory state remains the source of truth for the session
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.InDelta(t, 20.00, store.TotalPrice(), 0.001)
}

func TestPersistedShape(t *testing.T) {
	store, mem := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Product{ID: 7, Name: "Lamp", Price: "49.99", Image: "lamp.png", Description: "desk lamp"})

	data, err := mem.Load(ctx, "cart-storage:test")
	require.NoError(t, err)

	var persisted []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.EqualValues(t, 7, persisted[0]["id"])
	assert.Equal(t, "Lamp", persisted[0]["name"])
	assert.Equal(t, "49.99", persisted[0]["price"])
	assert.Equal(t, "lamp.png", persisted[0]["image"])
	assert.EqualValues(t, 1, persisted[0]["quantity"])
}
