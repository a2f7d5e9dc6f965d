package catalog

import (
	"embed"
	"encoding/json"

	"komani-booking/internal/domain/tour"
	"komani-booking/internal/pkg/errs"
)

//go:embed tours.json
var toursFS embed.FS

type tourRecord struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Duration string `json:"duration"`
	Category string `json:"category"`
}

// Store holds the static tour catalog. It is loaded once at process start
// and never mutated afterwards, so lookups need no locking.
type Store struct {
	order  []string
	bySlug map[string]*tour.Tour
}

func NewStore() (*Store, error) {
	raw, err := toursFS.ReadFile("tours.json")
	if err != nil {
		return nil, errs.Wrap(err, "read embedded tour catalog")
	}

	var records []tourRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errs.Wrap(err, "decode tour catalog")
	}

	store := &Store{
		order:  make([]string, 0, len(records)),
		bySlug: make(map[string]*tour.Tour, len(records)),
	}
	for _, rec := range records {
		t, err := tour.NewTour(rec.Slug, rec.Title, rec.Price, rec.Currency, rec.Duration, rec.Category)
		if err != nil {
			return nil, errs.Wrap(err, "invalid catalog entry "+rec.Slug)
		}
		store.order = append(store.order, rec.Slug)
		store.bySlug[rec.Slug] = t
	}
	return store, nil
}

func (s *Store) BySlug(slug string) (*tour.Tour, bool) {
	t, ok := s.bySlug[slug]
	return t, ok
}

func (s *Store) All() []*tour.Tour {
	out := make([]*tour.Tour, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.bySlug[slug])
	}
	return out
}
