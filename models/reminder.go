package models

import "time"

// ReminderLog records one birthday greeting attempt, stored under a
// reminder_ key.
type ReminderLog struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	Type         string    `json:"type"` // birthday
	Message      string    `json:"message"`
	Status       string    `json:"status"` // sent, failed, skipped
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Channel      string    `json:"channel"` // whatsapp, sms
	SentAt       time.Time `json:"sentAt"`
}
