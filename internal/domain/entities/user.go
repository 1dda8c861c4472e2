package entities

import "time"

// User is a staff account allowed into the CRM.
type User struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email        string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"size:150"`
	Role         string    `json:"role" gorm:"size:30"`
	PasswordHash string    `json:"-" gorm:"size:100;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VerifiedUser is what the session token carries once verified.
type VerifiedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
