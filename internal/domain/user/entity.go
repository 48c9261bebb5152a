package user

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	// IsAdmin gates parameter configuration, tariff changes and user
	// management; regular accounts only operate the day-to-day forms.
	IsAdmin   bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
