package models

type Staff struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	UserID     string   `json:"user" gorm:"uniqueIndex;not null"`
	User       User     `json:"-" gorm:"foreignKey:UserID;references:Id"`
	BusinessID uint     `json:"business" gorm:"index;not null"`
	Business   Business `json:"-" gorm:"foreignKey:BusinessID;references:ID"`
	// Nullable: deleting the role reverts this to null, the staff row stays.
	RoleID *uint `json:"role"`
	Role   *Role `json:"-" gorm:"foreignKey:RoleID;references:ID"`
}
