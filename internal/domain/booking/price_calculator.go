package booking

import (
	"komani-booking/internal/domain/tour"
)

// Quote is the derived total for a selection. It is recomputed from scratch
// on every priced-field change and never stored.
type Quote struct {
	// OnRequest is set when no numeric total exists: the tour has a
	// contact-for-pricing sentinel or the selection points at no known
	// tour. Callers must render a contact affordance, never an amount.
	OnRequest bool
	Total     Money
}

type PriceCalculator interface {
	Quote(sel *Selection, t *tour.Tour) Quote
}

// StandardPriceCalculator implements the published rate card: a flat 30%
// discount for children and seniors, a fixed +30 EUR extra-day surcharge on
// the Local Experience, and per-guest add-on rates.
type StandardPriceCalculator struct {
	DiscountMultiplier float64
	ExtraDaySurcharge  float64
	TransferPerGuest   float64
	FerryPerGuest      float64
	KayakPerGuest      float64
}

func NewStandardPriceCalculator() *StandardPriceCalculator {
	return &StandardPriceCalculator{
		DiscountMultiplier: 0.7,
		ExtraDaySurcharge:  30,
		TransferPerGuest:   30,
		FerryPerGuest:      10,
		KayakPerGuest:      20,
	}
}

func (pc *StandardPriceCalculator) Quote(sel *Selection, t *tour.Tour) Quote {
	if t == nil || t.Price().OnRequest() {
		return Quote{OnRequest: true}
	}

	// Malformed catalog prices degrade to a zero total, never NaN.
	base, ok := t.Price().Amount()
	if !ok {
		return Quote{Total: NewMoney(0)}
	}

	if sel.TourSlug() == "local-experience" && sel.AddOn(AddOnExtraDay) {
		base += pc.ExtraDaySurcharge
	}

	adultCost := float64(sel.Adults()) * base
	childCost := float64(sel.Children()) * base * pc.DiscountMultiplier
	seniorCost := float64(sel.Seniors()) * base * pc.DiscountMultiplier

	totalGuests := float64(sel.TotalGuests())

	var transferCost float64
	if sel.AddOn(AddOnTransfer) && !t.TransferIncluded() {
		transferCost = pc.TransferPerGuest * totalGuests
	}

	var ferryCost float64
	if sel.AddOn(AddOnFerry) {
		ferryCost = pc.FerryPerGuest * totalGuests
	}

	var kayakCost float64
	if sel.AddOn(AddOnKayak) {
		kayakCost = pc.KayakPerGuest * totalGuests
	}

	return Quote{
		Total: NewMoney(adultCost + childCost + seniorCost + transferCost + ferryCost + kayakCost),
	}
}
