package customer

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName          = errors.New("customer name must not be empty")
	ErrEmptyEmail         = errors.New("customer email must not be empty")
	ErrInvalidPhoneFormat = errors.New("invalid phone format")
)

// Accepted phone shapes are a deliberate narrow policy: international digits
// with an optional leading plus, or US-style dashed. Nothing else passes.
var (
	intlPhoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	usPhoneRegex   = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// Email is an exact-match identity value. Uniqueness is enforced by the
// store; comparison is case-sensitive by design.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, ErrEmptyEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Phone is optional; the zero value represents "not provided".
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, nil
	}
	if !intlPhoneRegex.MatchString(s) && !usPhoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhoneFormat
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

func (p Phone) IsEmpty() bool {
	return p.value == ""
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
