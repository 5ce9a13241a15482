package models

import "time"

const (
	TransactionCredit = "CREDIT"
	TransactionDebit  = "DEBIT"
)

// Transaction is an append-only ledger entry (credit or debit) against a
// customer, independent of bills.
type Transaction struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CustomerID     uint      `json:"customer" gorm:"index;not null"`
	Customer       Customer  `json:"-" gorm:"foreignKey:CustomerID;references:ID"`
	Amount         Money     `json:"amount" gorm:"type:numeric(10,2)"`
	Type           string    `json:"transaction_type" gorm:"size:10;not null"`
	Description    string    `json:"description"`
	BillAttachment string    `json:"bill_attachment"` // relative path under the upload dir, "bills/" prefix
	CreatedAt      time.Time `json:"created_at"`
}
