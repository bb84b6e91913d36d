package models

// Product is one row of the read-only catalog. The validation engine never
// writes to this table.
type Product struct {
	Code       int64   `json:"code" gorm:"primaryKey;column:code"`
	Name       string  `json:"name" gorm:"column:name"`
	CostPrice  float64 `json:"cost_price" gorm:"column:cost_price"`
	SalesPrice float64 `json:"sales_price" gorm:"column:sales_price"`
}

func (Product) TableName() string {
	return "products"
}

// Pack links a pack product to one of its components. A pack is enumerated by
// every row sharing the same PackID. A product code may at the same time be a
// plain product, a pack, and a component of other packs.
type Pack struct {
	ID        int64 `json:"id" gorm:"primaryKey;column:id"`
	PackID    int64 `json:"pack_id" gorm:"column:pack_id"`
	ProductID int64 `json:"product_id" gorm:"column:product_id"`
	Qty       int64 `json:"qty" gorm:"column:qty"`
}

func (Pack) TableName() string {
	return "packs"
}
