package models

import "time"

// User represents a registered account. The Password field only ever holds
// a bcrypt digest and is excluded from JSON output.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:255;unique;not null" json:"username"`
	FirstName    string    `gorm:"size:255" json:"first_name"`
	LastName     string    `gorm:"size:255" json:"last_name"`
	Password     string    `gorm:"size:1024;not null" json:"-"`
	RegisteredAt time.Time `json:"registered_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
}

func (User) TableName() string { return "user" }
