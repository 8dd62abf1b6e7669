package model

import "time"

// Verification statuses a freshly registered account can carry. New accounts
// always start out as pending; admin tooling moves them along later.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type User struct {
	ID                 string `gorm:"primaryKey" json:"id"`
	Email              string `gorm:"uniqueIndex;not null" json:"email"`
	StudentID          string `gorm:"index" json:"studentId,omitempty"`
	FirstName          string `gorm:"not null" json:"firstName"`
	LastName           string `gorm:"not null" json:"lastName"`
	Password           string `gorm:"not null" json:"-"`
	GraduationYear     string `json:"graduationYear"`
	Degree             string `json:"degree"`
	AgreeTerms         bool   `json:"agreeTerms"`
	VerificationStatus string `gorm:"default:pending" json:"verificationStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
