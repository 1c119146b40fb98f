package services

import (
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/bankclient/internal/client/models"
)

// minPasswordRunes is exclusive: a password needs more than this many characters.
const minPasswordRunes = 8

type fieldRule struct {
	field string
	value string
	rules []validation.Rule
}

// validateFields runs the rules in order and reports the first failure.
func validateFields(checks []fieldRule) error {
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return &ValidationError{Field: c.field, Err: err}
		}
	}
	return nil
}

// ValidateRegistration is the local gate in front of POST /api/user/register.
// Required fields come first, then the password checks.
func ValidateRegistration(r models.Registration) error {
	return validateFields([]fieldRule{
		{field: "id", value: strings.TrimSpace(r.ID), rules: []validation.Rule{validation.Required}},
		{field: "password", value: r.Password, rules: []validation.Rule{validation.Required}},
		{field: "name", value: strings.TrimSpace(r.Name), rules: []validation.Rule{validation.Required}},
		{field: "phoneNumber", value: strings.TrimSpace(r.PhoneNumber), rules: []validation.Rule{validation.Required}},
		{field: "email", value: strings.TrimSpace(r.Email), rules: []validation.Rule{validation.Required}},
		{field: "password", value: r.Password, rules: []validation.Rule{
			validation.By(differsFrom(r.ID)),
			validation.By(passwordPolicy),
		}},
	})
}

// ValidateCredentials rejects empty login input before it reaches the server.
func ValidateCredentials(identity, secret string) error {
	return validateFields([]fieldRule{
		{field: "id", value: strings.TrimSpace(identity), rules: []validation.Rule{validation.Required}},
		{field: "password", value: secret, rules: []validation.Rule{validation.Required}},
	})
}

func differsFrom(id string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == id {
			return ErrPasswordMatchesID
		}
		return nil
	}
}

func passwordPolicy(value interface{}) error {
	s, _ := value.(string)
	if utf8.RuneCountInString(s) <= minPasswordRunes || !strings.ContainsFunc(s, isASCIIDigit) {
		return ErrPasswordPolicy
	}
	return nil
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
