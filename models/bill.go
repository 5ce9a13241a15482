package models

import "time"

const (
	PaymentCash  = "CASH"
	PaymentCard  = "CARD"
	PaymentUPI   = "UPI"
	PaymentOther = "OTHER"
)

// Bill is a sale record. Its items collection is owned by the bill: updates
// replace the whole list, they never merge.
type Bill struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	CustomerID  uint       `json:"customer" gorm:"index;not null"`
	Customer    Customer   `json:"-" gorm:"foreignKey:CustomerID;references:ID"`
	TotalAmount Money      `json:"total_amount" gorm:"type:numeric(10,2)"`
	PaymentMode string     `json:"payment_mode" gorm:"size:10;not null"`
	Items       []BillItem `json:"items" gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
}

type BillItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	BillID          uint      `json:"-" gorm:"index"`
	InventoryItemID uint      `json:"inventory_item" gorm:"index;not null"`
	InventoryItem   Inventory `json:"-" gorm:"foreignKey:InventoryItemID;references:ID"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	// Price at time of sale, independent of the inventory item's current price.
	Price Money `json:"price" gorm:"type:numeric(10,2)"`
}
