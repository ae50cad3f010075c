package models

import "time"

type ReportTargetType string

const (
	ReportTargetPost    ReportTargetType = "post"
	ReportTargetComment ReportTargetType = "comment"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusResolved ReportStatus = "resolved"
)

// ValidReportStatus reports whether s is a known report status.
func ValidReportStatus(s string) bool {
	switch ReportStatus(s) {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved:
		return true
	}
	return false
}

type ReportPriority string

const (
	PriorityLow    ReportPriority = "low"
	PriorityMedium ReportPriority = "medium"
	PriorityHigh   ReportPriority = "high"
)

// ValidReportPriority reports whether p is a known report priority.
func ValidReportPriority(p string) bool {
	switch ReportPriority(p) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Report is a complaint against a post or a comment. The target is a tagged
// pair (TargetType, TargetID) so a report always points at exactly one thing.
type Report struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	TargetType ReportTargetType `gorm:"type:varchar(10);not null;index:idx_report_target" json:"targetType"`
	TargetID   uint             `gorm:"not null;index:idx_report_target" json:"targetId"`
	Reason     string           `gorm:"not null" json:"reason"`
	Details    string           `gorm:"type:text" json:"details,omitempty"`
	Status     ReportStatus     `gorm:"type:varchar(20);default:pending" json:"status"`
	Priority   ReportPriority   `gorm:"type:varchar(10);default:low" json:"priority"`
	UserID     uint             `gorm:"index;not null" json:"userId"`
	User       User             `json:"user"`
	CreatedAt  time.Time        `json:"createdAt"`
}
