package models

import "time"

type Inventory struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Price       Money  `json:"price" gorm:"type:numeric(10,2)"`
	// Decremented by bill creation without a floor check; may go negative.
	CurrentStock int       `json:"current_stock" gorm:"not null;default:0"`
	ImageURL     string    `json:"image_url"`
	BusinessID   uint      `json:"business" gorm:"index;not null"`
	Business     Business  `json:"-" gorm:"foreignKey:BusinessID;references:ID"`
	CreatedAt    time.Time `json:"created_at"`
}
