package models

import "time"

type Business struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Address string `json:"address" gorm:"not null"`
	// One business per user, enforced by the unique index.
	OwnerID   string    `json:"owner" gorm:"uniqueIndex;not null"`
	Owner     User      `json:"-" gorm:"foreignKey:OwnerID;references:Id"`
	CreatedAt time.Time `json:"created_at"`
}
