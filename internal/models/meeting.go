package models

import "time"

type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusConfirmed MeetingStatus = "confirmed"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

var MeetingStatuses = []MeetingStatus{
	MeetingStatusPending,
	MeetingStatusConfirmed,
	MeetingStatusCompleted,
	MeetingStatusCancelled,
}

func IsMeetingStatus(s string) bool {
	for _, status := range MeetingStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// MeetingRequest is a product consultation request. ProductName is
// denormalized at submission time so the record survives catalog changes.
type MeetingRequest struct {
	ID            string        `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	Email         string        `db:"email" json:"email"`
	Phone         string        `db:"phone" json:"phone"`
	Company       *string       `db:"company" json:"company"`
	ProductID     string        `db:"product_id" json:"productId"`
	ProductName   string        `db:"product_name" json:"productName"`
	PreferredDate string        `db:"preferred_date" json:"preferredDate"`
	PreferredTime string        `db:"preferred_time" json:"preferredTime"`
	Message       *string       `db:"message" json:"message"`
	Status        MeetingStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updatedAt"`
}
