// Package validate holds pure input validation, callable without an HTTP
// layer. Each function returns FieldErrors keyed by field name; an empty map
// means the input is acceptable.
package validate

import (
	"net/mail"
	"time"
)

type FieldErrors map[string]string

func (e FieldErrors) OK() bool { return len(e) == 0 }

type RegistrationInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func Registration(in RegistrationInput) FieldErrors {
	errs := FieldErrors{}
	if in.Username == "" {
		errs["username"] = "username is required"
	} else if len(in.Username) < 3 || len(in.Username) > 150 {
		errs["username"] = "username must be between 3 and 150 characters"
	}
	if in.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "email is not a valid address"
	}
	if in.Password == "" {
		errs["password"] = "password is required"
	} else if len(in.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	}
	if in.ConfirmPassword != in.Password {
		errs["confirm_password"] = "passwords must match"
	}
	return errs
}

type HealthRecordInput struct {
	Date       string // YYYY-MM-DD
	Exercise   int
	Meditation int
	Sleep      int
}

// HealthRecord validates metric ranges. Out-of-range values are rejected,
// never clamped. Sleep bounds are inclusive: 0 and 24 both pass.
func HealthRecord(in HealthRecordInput) FieldErrors {
	errs := FieldErrors{}
	if in.Date == "" {
		errs["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		errs["date"] = "date must be YYYY-MM-DD"
	}
	if in.Exercise < 0 {
		errs["exercise"] = "exercise minutes must be zero or more"
	}
	if in.Meditation < 0 {
		errs["meditation"] = "meditation minutes must be zero or more"
	}
	if in.Sleep < 0 || in.Sleep > 24 {
		errs["sleep"] = "sleep hours must be between 0 and 24"
	}
	return errs
}
