package response

import (
	"komani-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TourResponse struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Price            string   `json:"price"`
	BasePriceEUR     *float64 `json:"basePriceEur,omitempty"`
	OnRequest        bool     `json:"onRequest"`
	Currency         string   `json:"currency"`
	Duration         string   `json:"duration"`
	Category         string   `json:"category"`
	TransferIncluded bool     `json:"transferIncluded"`
	Inclusions       []string `json:"inclusions"`
}

func FromTourView(view *queries.TourView) *TourResponse {
	var resp TourResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTourViews(views []*queries.TourView) []*TourResponse {
	out := make([]*TourResponse, len(views))
	for i, v := range views {
		out[i] = FromTourView(v)
	}
	return out
}
