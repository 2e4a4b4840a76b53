package models

import "time"

// Post represents a blog post. A post is owned by exactly one user for its
// lifetime; ownership never transfers.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"size:500;default:''" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Post) TableName() string { return "post" }
