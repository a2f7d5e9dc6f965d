package commands

import (
	"komani-booking/internal/domain/booking"
	"komani-booking/internal/domain/tour"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(sel *booking.Selection) error
	Get(id uuid.UUID) (*booking.Selection, error)
	Update(id uuid.UUID, mutate func(*booking.Selection) error) (*booking.Selection, error)
	Delete(id uuid.UUID) error
}

type TourCatalog interface {
	BySlug(slug string) (*tour.Tour, bool)
	All() []*tour.Tour
}

type Translator interface {
	Normalize(locale string) string
	T(lang, key string, args map[string]string) string
}
