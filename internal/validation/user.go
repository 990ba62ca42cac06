// Package validation gates user and order records before they are committed.
// Rules run in a fixed order, every failure is collected, and the single rule
// that needs a store round-trip runs last so malformed input never pays for
// the lookup.
package validation

import (
	"context"
	"regexp"

	"github.com/motodeal/motodeal-server/internal/model"
)

// Failure reasons surfaced to callers. The wording is part of the API
// contract with existing clients.
const (
	ReasonNameBlank       = "Name cannot be blank"
	ReasonEmailBlank      = "Email cannot be blank"
	ReasonEmailFormat     = "This email address is not in the correct format. Please enter an email address in the following format: 'example@example.com'."
	ReasonPasswordBlank   = "Password cannot be blank"
	ReasonEmailTaken      = "The specified email address is already in use."
	ReasonEmailUnverified = "The email address could not be verified as unique."
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9]+([._%+-][A-Za-z0-9]+)*@[A-Za-z]+(\.[A-Za-z]+)+$`)

// EmailChecker is the persistence collaborator consulted by the uniqueness
// rule. model.UserStore satisfies it.
type EmailChecker interface {
	ExistsWithEmail(ctx context.Context, email string) (bool, error)
}

// UserValidator runs the credential validation pipeline.
type UserValidator struct {
	emails EmailChecker
}

// NewUserValidator builds a validator backed by the given uniqueness checker.
func NewUserValidator(emails EmailChecker) *UserValidator {
	return &UserValidator{emails: emails}
}

// Validate checks a candidate user against the rule pipeline and returns a
// *Error carrying every failed reason, or nil when all rules pass.
//
// Federated users are exempt from the email-presence, password, and (when the
// email is empty) format rules: their credentials live with the external
// provider. The uniqueness lookup runs only after the cheap rules pass; if
// the lookup fails or the context is cancelled, validation fails closed.
func (v *UserValidator) Validate(ctx context.Context, user model.User) error {
	return v.validate(ctx, user, true)
}

// ValidateUpdate runs the pipeline for an already-persisted record.
// The uniqueness lookup is skipped when the email is unchanged, since the
// store would otherwise report the record's own row as a duplicate.
func (v *UserValidator) ValidateUpdate(ctx context.Context, user model.User, previousEmail string) error {
	return v.validate(ctx, user, user.Email != previousEmail)
}

func (v *UserValidator) validate(ctx context.Context, user model.User, checkUnique bool) error {
	verr := &Error{}

	if user.Name == "" {
		verr.add(ReasonNameBlank)
	}

	federated := user.Provider.Federated()

	if !federated && user.Email == "" {
		verr.add(ReasonEmailBlank)
	}

	if user.Email != "" && !emailPattern.MatchString(user.Email) {
		verr.add(ReasonEmailFormat)
	}

	if !federated && user.DerivedKey == "" {
		verr.add(ReasonPasswordBlank)
	}

	if verr.failed() {
		return verr
	}

	if checkUnique && user.Email != "" {
		taken, err := v.emails.ExistsWithEmail(ctx, user.Email)
		if err != nil {
			verr.add(ReasonEmailUnverified)
			return verr
		}
		if taken {
			verr.add(ReasonEmailTaken)
			return verr
		}
	}

	return nil
}
