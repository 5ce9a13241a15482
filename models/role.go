package models

import "gorm.io/datatypes"

// Role carries an opaque list of permission strings; nothing in the backend
// interprets them. Roles are not scoped to a business.
type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:50;not null"`
	Permissions datatypes.JSON `json:"permissions" gorm:"type:jsonb"`
}
