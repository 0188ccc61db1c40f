package model

// OrderLine is a single catalog position inside an order document.
type OrderLine struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	Price        *float64 `json:"price,omitempty"`
	Comment      *string  `json:"comment,omitempty"`
	Checked      *bool    `json:"checked,omitempty"`
	ChefComment  *string  `json:"chefComment,omitempty"`
	DeliveryDate *string  `json:"deliveryDate,omitempty"`
}

// Order is the persisted row. Line items are stored as one JSON document in
// the products column and decoded on read.
type Order struct {
	ID                    string  `gorm:"primaryKey;column:id"`
	Status                string  `gorm:"column:status;not null"`
	Products              string  `gorm:"column:products;not null"`
	CreatedAt             string  `gorm:"column:createdAt;not null"`
	DeliveredAt           *string `gorm:"column:deliveredAt"`
	EstimatedDeliveryDate *string `gorm:"column:estimatedDeliveryDate"`
	Branch                string  `gorm:"column:branch;not null"`
}

func (Order) TableName() string { return "orders" }

// OrderDocument is the wire form of an order with decoded line items.
type OrderDocument struct {
	ID                    string      `json:"id"`
	Status                string      `json:"status"`
	Products              []OrderLine `json:"products"`
	CreatedAt             string      `json:"createdAt"`
	DeliveredAt           *string     `json:"deliveredAt"`
	EstimatedDeliveryDate *string     `json:"estimatedDeliveryDate"`
	Branch                string      `json:"branch"`
}

// Product is one catalog row from the static seed.
type Product struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`
	Unit     string `gorm:"not null" json:"unit"`
}

func (Product) TableName() string { return "master_products" }
