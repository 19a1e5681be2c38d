package models

import "time"

// ContactSubmission is a stored copy of a contact-form message. The mail
// delivery is separate; submissions are persisted even when it succeeds.
type ContactSubmission struct {
	ID          string    `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text"`
	Subject     string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	MessageText string    `json:"messageText" db:"message_text" gorm:"column:message_text;type:text;not null"`
	MessageHTML string    `json:"messageHtml" db:"message_html" gorm:"column:message_html;type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
