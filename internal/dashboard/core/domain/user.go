package domain

import "github.com/google/uuid"

// User is a dashboard-relevant user record. Active defaults to false, so a
// record that never set the flag counts as inactive rather than erroring.
type User struct {
	ID     string
	Name   string
	Active bool
}

// NewUser builds a user with a fresh id.
func NewUser(name string, active bool) User {
	return User{
		ID:     uuid.New().String(),
		Name:   name,
		Active: active,
	}
}
