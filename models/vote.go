package models

import "time"

// Vote is a single user's vote on a post or a comment. Exactly one of
// PostID/CommentID is set; the unique indexes keep one vote per (user, target).
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_vote_user_post;uniqueIndex:idx_vote_user_comment" json:"userId"`
	PostID    *uint     `gorm:"uniqueIndex:idx_vote_user_post" json:"postId,omitempty"`
	CommentID *uint     `gorm:"uniqueIndex:idx_vote_user_comment" json:"commentId,omitempty"`
	Value     int       `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}
