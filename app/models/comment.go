package models

import "time"

// Comment represents a comment on a blog post. The author must not be the
// post's owner; that invariant is enforced at creation time.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Commentary string    `gorm:"size:500;not null" json:"commentary"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Post       *Post     `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Comment) TableName() string { return "comment" }
