package models

import "time"

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// ContactStatuses lists the allowed values. Any status may follow any
// other; there is no transition table.
var ContactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusArchived,
}

func IsContactStatus(s string) bool {
	for _, status := range ContactStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID          string        `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Email       string        `db:"email" json:"email"`
	Phone       *string       `db:"phone" json:"phone"`
	Company     *string       `db:"company" json:"company"`
	InquiryType string        `db:"inquiry_type" json:"inquiryType"`
	Message     string        `db:"message" json:"message"`
	Status      ContactStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updatedAt"`
}
