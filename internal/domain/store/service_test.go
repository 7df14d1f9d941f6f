package store

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invKey struct {
	storeID uint
	isbn13  string
}

// memInventory 内存版库存仓储,记录写操作次数
type memInventory struct {
	rows   map[invKey]*Inventory
	writes int
}

func newMemInventory(rows ...*Inventory) *memInventory {
	m := &memInventory{rows: map[invKey]*Inventory{}}
	for _, r := range rows {
		m.rows[invKey{r.StoreID, r.ISBN13}] = r
	}
	return m
}

func (m *memInventory) List(context.Context) ([]*Inventory, error) {
	list := make([]*Inventory, 0, len(m.rows))
	for _, r := range m.rows {
		cp := *r
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].StoreID != list[j].StoreID {
			return list[i].StoreID < list[j].StoreID
		}
		return list[i].ISBN13 < list[j].ISBN13
	})
	return list, nil
}

func (m *memInventory) ListByStore(ctx context.Context, storeID uint) ([]*Inventory, error) {
	all, _ := m.List(ctx)
	var list []*Inventory
	for _, r := range all {
		if r.StoreID == storeID {
			list = append(list, r)
		}
	}
	return list, nil
}

func (m *memInventory) Find(_ context.Context, storeID uint, isbn13 string) (*Inventory, error) {
	r, ok := m.rows[invKey{storeID, isbn13}]
	if !ok {
		return nil, ErrInventoryNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memInventory) Create(_ context.Context, inv *Inventory) error {
	m.writes++
	cp := *inv
	m.rows[invKey{inv.StoreID, inv.ISBN13}] = &cp
	return nil
}

func (m *memInventory) Update(_ context.Context, inv *Inventory) error {
	m.writes++
	cp := *inv
	m.rows[invKey{inv.StoreID, inv.ISBN13}] = &cp
	return nil
}

func (m *memInventory) Delete(_ context.Context, storeID uint, isbn13 string) (bool, error) {
	m.writes++
	k := invKey{storeID, isbn13}
	_, ok := m.rows[k]
	delete(m.rows, k)
	return ok, nil
}

type memStores struct{ stores []*Store }

func (m *memStores) List(context.Context) ([]*Store, error) { return m.stores, nil }
func (m *memStores) FindByID(_ context.Context, id uint) (*Store, error) {
	for _, s := range m.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrStoreNotFound
}
func (m *memStores) Create(context.Context, *Store) error { return nil }
func (m *memStores) Update(context.Context, *Store) error { return nil }
func (m *memStores) Delete(context.Context, uint) (bool, error) { return false, nil }

const isbn = "9780000000001"

func TestInventory_Remove(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		remove   int
		depleted bool
		left     int
	}{
		{"少于库存", 5, 2, false, 3},
		{"等于库存", 5, 5, true, 5},
		{"多于库存", 5, 9, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Inventory{StoreID: 1, ISBN13: isbn, Amount: tt.stock}
			depleted, err := inv.Remove(tt.remove)
			require.NoError(t, err)
			assert.Equal(t, tt.depleted, depleted)
			assert.Equal(t, tt.left, inv.Amount)
		})
	}

	t.Run("数量必须大于0", func(t *testing.T) {
		inv := &Inventory{Amount: 5}
		_, err := inv.Remove(0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.ErrorIs(t, inv.Add(-1), ErrInvalidAmount)
		assert.Equal(t, 5, inv.Amount)
	})
}

func TestService_StockBook(t *testing.T) {
	ctx := context.Background()

	t.Run("没有库存行时插入", func(t *testing.T) {
		inv := newMemInventory()
		svc := NewService(&memStores{}, inv)

		row, created, err := svc.StockBook(ctx, 1, isbn, 5)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 5, row.Amount)
		assert.Len(t, inv.rows, 1)
	})

	t.Run("已有库存行时累加,不重复插入", func(t *testing.T) {
		inv := newMemInventory(&Inventory{StoreID: 1, ISBN13: isbn, Amount: 3})
		svc := NewService(&memStores{}, inv)

		row, created, err := svc.StockBook(ctx, 1, isbn, 4)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 7, row.Amount)
		assert.Len(t, inv.rows, 1)
		assert.Equal(t, 7, inv.rows[invKey{1, isbn}].Amount)
	})

	t.Run("数量非法不写库", func(t *testing.T) {
		inv := newMemInventory(&Inventory{StoreID: 1, ISBN13: isbn, Amount: 3})
		svc := NewService(&memStores{}, inv)

		_, _, err := svc.StockBook(ctx, 1, isbn, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Zero(t, inv.writes)
	})
}

func TestService_UnstockBook(t *testing.T) {
	ctx := context.Background()

	t.Run("出库少于库存时扣减", func(t *testing.T) {
		inv := newMemInventory(&Inventory{StoreID: 1, ISBN13: isbn, Amount: 5})
		svc := NewService(&memStores{}, inv)

		remaining, err := svc.UnstockBook(ctx, 1, isbn, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
		assert.Equal(t, 3, inv.rows[invKey{1, isbn}].Amount)
	})

	t.Run("出库大于等于库存时删除整行", func(t *testing.T) {
		for _, n := range []int{5, 6} {
			inv := newMemInventory(&Inventory{StoreID: 1, ISBN13: isbn, Amount: 5})
			svc := NewService(&memStores{}, inv)

			remaining, err := svc.UnstockBook(ctx, 1, isbn, n)
			require.NoError(t, err)
			assert.Zero(t, remaining)
			assert.Empty(t, inv.rows)
		}
	})

	t.Run("没有库存行", func(t *testing.T) {
		svc := NewService(&memStores{}, newMemInventory())
		_, err := svc.UnstockBook(ctx, 1, isbn, 1)
		assert.ErrorIs(t, err, ErrInventoryNotFound)
	})
}

func TestService_ListStoreInventory(t *testing.T) {
	ctx := context.Background()
	inv := newMemInventory(
		&Inventory{StoreID: 1, ISBN13: isbn, Amount: 1},
		&Inventory{StoreID: 2, ISBN13: isbn, Amount: 2},
	)
	svc := NewService(&memStores{}, inv)

	rows, err := svc.ListStoreInventory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Amount)

	_, err = svc.ListStoreInventory(ctx, 3)
	assert.ErrorIs(t, err, ErrNoBooksInStore)
}
