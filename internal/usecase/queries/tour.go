package queries

import (
	"context"

	"komani-booking/internal/domain/tour"
	"komani-booking/internal/pkg/errs"
)

var ErrTourNotFound = errs.New("tour not found")

type TourQueries interface {
	List(ctx context.Context, locale string) ([]*TourView, error)
	BySlug(ctx context.Context, slug, locale string) (*TourView, error)
}

type tourQueriesImpl struct {
	catalog    TourCatalog
	translator Translator
}

func NewTourQueries(catalog TourCatalog, translator Translator) TourQueries {
	return &tourQueriesImpl{catalog: catalog, translator: translator}
}

func (q *tourQueriesImpl) List(_ context.Context, locale string) ([]*TourView, error) {
	lang := q.translator.Normalize(locale)
	all := q.catalog.All()
	out := make([]*TourView, len(all))
	for i, t := range all {
		out[i] = q.buildView(t, lang)
	}
	return out, nil
}

func (q *tourQueriesImpl) BySlug(_ context.Context, slug, locale string) (*TourView, error) {
	t, ok := q.catalog.BySlug(slug)
	if !ok {
		return nil, ErrTourNotFound
	}
	return q.buildView(t, q.translator.Normalize(locale)), nil
}

func (q *tourQueriesImpl) buildView(t *tour.Tour, lang string) *TourView {
	view := &TourView{
		Slug:             t.Slug(),
		Title:            t.Title(),
		Price:            t.Price().String(),
		OnRequest:        t.Price().OnRequest(),
		Currency:         t.Currency(),
		Duration:         t.Duration(),
		Category:         t.Category(),
		TransferIncluded: t.TransferIncluded(),
		Inclusions:       q.translator.StringList(lang, "ToursData."+t.Slug()+".inclusions"),
	}

	if title := q.translator.T(lang, "ToursData."+t.Slug()+".title", nil); title != "ToursData."+t.Slug()+".title" {
		view.Title = title
	}
	if t.Price().OnRequest() {
		view.Price = q.translator.T(lang, "Booking.callPrice", nil)
	} else if amount, ok := t.Price().Amount(); ok {
		view.BasePriceEUR = &amount
	}
	return view
}
