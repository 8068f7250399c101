package domain

import (
	"time"
)

type User struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Password       string    `json:"-"` // Hashed password
	AssistantName  string    `json:"assistant_name"`
	AssistantImage string    `json:"assistant_image"`
	History        []string  `json:"history" gorm:"serializer:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Profile returns the assistant identity used when interpreting commands
// issued by this user.
func (u *User) Profile() AssistantProfile {
	return AssistantProfile{
		AssistantName: u.AssistantName,
		Username:      u.Name,
	}
}
