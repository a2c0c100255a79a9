package model

// User is the singleton profile. A missing user means onboarding has not
// completed yet.
type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}
