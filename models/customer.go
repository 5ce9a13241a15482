package models

import "time"

type Customer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Phone      string    `json:"phone" gorm:"size:15;not null"`
	Email      string    `json:"email"`
	BusinessID uint      `json:"business" gorm:"index;not null"`
	Business   Business  `json:"-" gorm:"foreignKey:BusinessID;references:ID"`
	CreatedAt  time.Time `json:"created_at"`
}
