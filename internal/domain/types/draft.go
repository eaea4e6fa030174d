package types

import "time"

// Draft is a locally saved copy of an unfinished registration form.
type Draft struct {
	Form    RegistrationForm `json:"form"`
	SavedAt time.Time        `json:"saved_at"`
}
