// Package models holds the entities shared by the service and repository
// layers.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password and is never serialized outward. ID is opaque and may be empty
// when the caller does not assign identifiers.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	LoginCount   int       `json:"login_count"`
}

// RecordActivity moves LastActivity forward to now.
func (u *User) RecordActivity(now time.Time) {
	u.LastActivity = now
}

// IncrementLogin counts a successful login and records activity.
func (u *User) IncrementLogin(now time.Time) {
	u.LoginCount++
	u.RecordActivity(now)
}

// IsActive reports whether the user was active within the last windowDays
// days. A non-positive window is always active. Activity exactly at the
// window boundary does not count.
func (u *User) IsActive(now time.Time, windowDays int) bool {
	if windowDays <= 0 {
		return true
	}
	threshold := now.AddDate(0, 0, -windowDays)
	return u.LastActivity.After(threshold)
}

// ActivityScore ranks engagement: login frequency normalized by account age
// in days, plus a recency bonus (20 within 7 days, 10 within 30). Integer
// division throughout.
func (u *User) ActivityScore(now time.Time) int {
	daysSinceCreation := int(now.Sub(u.CreatedAt).Hours() / 24)
	if daysSinceCreation < 1 {
		daysSinceCreation = 1
	}

	score := (u.LoginCount * 10) / daysSinceCreation

	if u.IsActive(now, 7) {
		score += 20
	} else if u.IsActive(now, 30) {
		score += 10
	}

	return score
}
