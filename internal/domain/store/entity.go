package store

// Store 门店实体
// 地址在数据库中唯一
type Store struct {
	ID      uint
	Name    string
	Address string
}

// Inventory 门店库存(门店+ISBN联合主键)
//
// 不变量:
//   - Amount始终>0,扣减到0或以下时整行删除,而不是保存0或负数
//   - 同一门店同一ISBN只有一行,入库时累加而不是新增一行
type Inventory struct {
	StoreID uint
	ISBN13  string
	Amount  int
}

// NewInventory 创建库存行
func NewInventory(storeID uint, isbn13 string, amount int) (*Inventory, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Inventory{StoreID: storeID, ISBN13: isbn13, Amount: amount}, nil
}

// Add 入库,数量必须>0
func (i *Inventory) Add(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	i.Amount += amount
	return nil
}

// Remove 出库,数量必须>0
// 出库数量>=当前库存时返回depleted=true,调用方应删除整行;
// 否则扣减Amount
func (i *Inventory) Remove(amount int) (depleted bool, err error) {
	if amount <= 0 {
		return false, ErrInvalidAmount
	}
	if amount >= i.Amount {
		return true, nil
	}
	i.Amount -= amount
	return false, nil
}
