package entity

// Chat is one message in a report's append-only log. Rows are never
// updated or deleted after creation.
type Chat struct {
	Model
	ReportID uint   `gorm:"index;not null" json:"report_id"`
	Report   Report `json:"-"` // hidden to avoid loops

	// tagged union: the sender is a Student or a Counselor depending on
	// SenderKind; there is no DB-level relation, lookups dispatch on kind
	SenderID   uint   `gorm:"not null" json:"sender_id"`
	SenderKind string `gorm:"not null" json:"sender_kind"`

	Body string `gorm:"type:text;not null" json:"message"`
}
