package models

import "time"

type PostCategory string

const (
	CategoryAcademic    PostCategory = "ACADEMIC"
	CategoryNonAcademic PostCategory = "NON_ACADEMIC"
)

// ValidPostCategory reports whether c is a known post category.
func ValidPostCategory(c string) bool {
	switch PostCategory(c) {
	case CategoryAcademic, CategoryNonAcademic:
		return true
	}
	return false
}

type Post struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Category    PostCategory `gorm:"type:varchar(20);not null" json:"category"`
	Subject     string       `json:"subject,omitempty"` // only for ACADEMIC posts
	UserID      uint         `gorm:"index;not null" json:"userId"`
	User        User         `json:"user"`
	CreatedAt   time.Time    `json:"createdAt"`

	Comments []Comment `json:"comments,omitempty"`
	Votes    []Vote    `json:"-"`

	// Derived per read, never stored
	VoteScore    int   `gorm:"-" json:"voteScore"`
	CommentCount int64 `gorm:"-" json:"commentCount"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	User      User      `json:"user"`
	PostID    uint      `gorm:"index;not null" json:"postId"`
	ParentID  *uint     `gorm:"index" json:"parentId,omitempty"` // reply threading
	CreatedAt time.Time `json:"createdAt"`

	VoteScore int `gorm:"-" json:"voteScore"`
}
