package tour

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptySlug    = errors.New("tour slug cannot be empty")
	ErrInvalidPrice = errors.New("invalid tour price")
)

// Tours whose base price already bundles the Shkoder transfer. The transfer
// add-on is not selectable for these slugs.
var transferIncludedSlugs = map[string]struct{}{
	"boat-tour":        {},
	"local-experience": {},
}

// Price is the per-person base price of a tour. A price is either a numeric
// EUR amount or a contact-for-pricing sentinel ("Call" / "Contact").
type Price struct {
	raw string
}

func NewPrice(raw string) (Price, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Price{}, ErrInvalidPrice
	}
	return Price{raw: raw}, nil
}

func (p Price) OnRequest() bool {
	return p.raw == "Call" || p.raw == "Contact"
}

// Amount returns the numeric base price in EUR. ok is false for sentinel
// prices and for malformed catalog data; callers must degrade to a safe
// display instead of doing arithmetic.
func (p Price) Amount() (float64, bool) {
	if p.OnRequest() {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p Price) String() string {
	return p.raw
}

type Tour struct {
	slug     string
	title    string
	price    Price
	currency string
	duration string
	category string
}

func NewTour(slug, title, rawPrice, currency, duration, category string) (*Tour, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrEmptySlug
	}

	price, err := NewPrice(rawPrice)
	if err != nil {
		return nil, err
	}

	return &Tour{
		slug:     slug,
		title:    strings.TrimSpace(title),
		price:    price,
		currency: currency,
		duration: duration,
		category: category,
	}, nil
}

func (t *Tour) Slug() string     { return t.slug }
func (t *Tour) Title() string    { return t.title }
func (t *Tour) Price() Price     { return t.price }
func (t *Tour) Currency() string { return t.currency }
func (t *Tour) Duration() string { return t.duration }
func (t *Tour) Category() string { return t.category }

func (t *Tour) TransferIncluded() bool {
	return IsTransferIncluded(t.slug)
}

func IsTransferIncluded(slug string) bool {
	_, ok := transferIncludedSlugs[slug]
	return ok
}
