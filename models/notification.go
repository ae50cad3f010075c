package models

import "time"

type NotificationType string

const (
	NotificationPostDeleted NotificationType = "post_deleted"
	NotificationNewComment  NotificationType = "new_comment"
)

// Notification is a per-user mailbox entry. PostTitle is a snapshot taken when
// the notification is created, so it survives deletion of the post it names.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	PostTitle string           `json:"postTitle,omitempty"`
	UserID    uint             `gorm:"index;not null" json:"userId"`
	Read      bool             `gorm:"default:false" json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
