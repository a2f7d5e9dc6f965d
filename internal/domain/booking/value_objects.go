package booking

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrNameTooShort  = errors.New("name must be at least 2 characters")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrPhoneTooShort = errors.New("phone must be at least 8 characters")
)

// EurToLek is the fixed exchange rate used for display conversion only.
// The stored total is always EUR.
const EurToLek = 106

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Money is an EUR amount. Lek conversion happens at render time and never
// mutates the underlying amount.
type Money struct {
	eur float64
}

func NewMoney(eur float64) Money {
	return Money{eur: eur}
}

func (m Money) EUR() float64 {
	return m.eur
}

func (m Money) Lek() int64 {
	return int64(math.Round(m.eur * EurToLek))
}

func (m Money) Add(other Money) Money {
	return Money{eur: m.eur + other.eur}
}

type ContactInfo struct {
	name            string
	email           string
	phone           string
	specialRequests string
}

func NewContactInfo(name, email, phone, specialRequests string) (ContactInfo, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return ContactInfo{}, ErrNameTooShort
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ContactInfo{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if len(phone) < 8 {
		return ContactInfo{}, ErrPhoneTooShort
	}

	return ContactInfo{
		name:            name,
		email:           email,
		phone:           phone,
		specialRequests: strings.TrimSpace(specialRequests),
	}, nil
}

// DraftContactInfo carries in-progress contact edits without enforcing the
// submission constraints; Validate on the selection gates those.
func DraftContactInfo(name, email, phone, specialRequests string) ContactInfo {
	return ContactInfo{
		name:            strings.TrimSpace(name),
		email:           strings.TrimSpace(email),
		phone:           strings.TrimSpace(phone),
		specialRequests: strings.TrimSpace(specialRequests),
	}
}

func (c ContactInfo) Name() string            { return c.name }
func (c ContactInfo) Email() string           { return c.email }
func (c ContactInfo) Phone() string           { return c.phone }
func (c ContactInfo) SpecialRequests() string { return c.specialRequests }

func (c ContactInfo) IsEmpty() bool {
	return c.name == "" && c.email == "" && c.phone == ""
}
