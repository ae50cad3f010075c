package models

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusWarned    UserStatus = "warned"
	UserStatusSuspended UserStatus = "suspended"
)

// ValidUserStatus reports whether s is one of the moderation statuses.
func ValidUserStatus(s string) bool {
	switch UserStatus(s) {
	case UserStatusActive, UserStatusWarned, UserStatusSuspended:
		return true
	}
	return false
}

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	GoogleID  string     `gorm:"uniqueIndex;not null" json:"-"`
	Name      string     `json:"name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Image     string     `json:"image"`
	Status    UserStatus `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"-"`

	Posts         []Post         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Comments      []Comment      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notifications []Notification `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
