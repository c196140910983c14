package entity

import (
	"time"
)

const (
	ReportTypeOnline  = "online"
	ReportTypeOffline = "offline"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
)

type Report struct {
	Model
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Type        string     `gorm:"not null" json:"type"`
	Status      string     `gorm:"not null;default:pending" json:"status"`
	IsAnonymous bool       `gorm:"not null;default:false" json:"is_anonymous"`
	ScheduledAt *time.Time `json:"scheduled_at"`

	// nil when the report is anonymous, and stays nil forever
	StudentID *uint    `json:"student_id"`
	Student   *Student `gorm:"constraint:OnDelete:SET NULL" json:"student,omitempty"`

	// nil until a counselor accepts the report
	CounselorID *uint      `json:"counselor_id"`
	Counselor   *Counselor `gorm:"constraint:OnDelete:SET NULL" json:"counselor,omitempty"`

	// preload only on the detail endpoint
	Chats []Chat `gorm:"foreignKey:ReportID" json:"chats,omitempty"`
}
