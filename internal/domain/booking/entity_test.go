//go:build unit

package booking_test

import (
	"testing"
	"time"

	"komani-booking/internal/domain/booking"
	"komani-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)

func TestNewSelection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		sel := booking.NewSelection(booking.Seed{}, now)

		assert.NotEqual(t, uuid.Nil, sel.ID())
		assert.Equal(t, "boat-tour", sel.TourSlug())
		assert.Equal(t, now, sel.Date())
		assert.Equal(t, 2, sel.Adults())
		assert.Zero(t, sel.Children())
		assert.Zero(t, sel.Seniors())
		assert.Equal(t, booking.PayInPerson, sel.PaymentMethod())
		assert.Equal(t, booking.StatusEditing, sel.Status())
	})

	t.Run("seed overrides defaults", func(t *testing.T) {
		date := now.AddDate(0, 1, 0)
		guests := 4
		sel := booking.NewSelection(booking.Seed{TourSlug: "shkoder-valbona", Date: &date, Guests: &guests}, now)

		assert.Equal(t, "shkoder-valbona", sel.TourSlug())
		assert.Equal(t, date, sel.Date())
		assert.Equal(t, 4, sel.Adults())
	})

	t.Run("unusable seed values fall back", func(t *testing.T) {
		var zero time.Time
		guests := 0
		sel := booking.NewSelection(booking.Seed{Date: &zero, Guests: &guests}, now)

		assert.Equal(t, now, sel.Date())
		assert.Equal(t, 2, sel.Adults())
	})
}

func TestSelectionAdjustGuests(t *testing.T) {
	t.Run("increments are unbounded", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithGuests(1, 0, 0).Build()

		for range 10 {
			require.NoError(t, sel.AdjustGuests(booking.CategoryAdults, booking.Increment, now))
		}
		assert.Equal(t, 11, sel.Adults())
	})

	t.Run("adults cannot drop below one", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithGuests(1, 0, 0).Build()

		err := sel.AdjustGuests(booking.CategoryAdults, booking.Decrement, now)
		require.ErrorIs(t, err, booking.ErrAdultRequired)
		assert.Equal(t, 1, sel.Adults(), "rejected decrement must leave the count untouched")
	})

	t.Run("adults above one decrement normally", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithGuests(3, 0, 0).Build()

		require.NoError(t, sel.AdjustGuests(booking.CategoryAdults, booking.Decrement, now))
		assert.Equal(t, 2, sel.Adults())
	})

	t.Run("children and seniors floor at zero", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithGuests(2, 0, 0).Build()

		require.NoError(t, sel.AdjustGuests(booking.CategoryChildren, booking.Decrement, now))
		assert.Zero(t, sel.Children())

		require.NoError(t, sel.AdjustGuests(booking.CategorySeniors, booking.Decrement, now))
		assert.Zero(t, sel.Seniors())
	})

	t.Run("invalid category and direction are rejected", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()

		err := sel.AdjustGuests(booking.GuestCategory("infants"), booking.Increment, now)
		assert.ErrorIs(t, err, booking.ErrInvalidCategory)

		err = sel.AdjustGuests(booking.CategoryAdults, booking.Direction("sideways"), now)
		assert.ErrorIs(t, err, booking.ErrInvalidDirection)
	})

	t.Run("rejected once no longer editing", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithStatus(booking.StatusSubmitting).Build()

		err := sel.AdjustGuests(booking.CategoryAdults, booking.Increment, now)
		assert.ErrorIs(t, err, booking.ErrNotEditing)
	})
}

func TestSelectionAddOns(t *testing.T) {
	t.Run("transfer is not selectable when the tour includes it", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithTour("boat-tour").Build()
		tr := mustTour(t, "boat-tour", "54")

		err := sel.SetAddOn(booking.AddOnTransfer, true, tr, now)
		require.ErrorIs(t, err, booking.ErrAddOnNotSelectable)
		assert.False(t, sel.AddOn(booking.AddOnTransfer))
	})

	t.Run("transfer toggles on tours without one", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithTour("shkoder-valbona").Build()
		tr := mustTour(t, "shkoder-valbona", "30")

		require.NoError(t, sel.SetAddOn(booking.AddOnTransfer, true, tr, now))
		assert.True(t, sel.AddOn(booking.AddOnTransfer))

		require.NoError(t, sel.SetAddOn(booking.AddOnTransfer, false, tr, now))
		assert.False(t, sel.AddOn(booking.AddOnTransfer))
	})

	t.Run("unknown add-on is rejected", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()

		err := sel.SetAddOn(booking.AddOn("jetski"), true, nil, now)
		assert.ErrorIs(t, err, booking.ErrInvalidAddOn)
	})

	t.Run("selectable set follows the tour", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithTour("boat-tour").Build()
		assert.Equal(t, []booking.AddOn{booking.AddOnKayak, booking.AddOnFerry}, sel.SelectableAddOns())

		sel = builder.NewSelectionBuilder().WithTour("local-experience").Build()
		assert.Equal(t,
			[]booking.AddOn{booking.AddOnKayak, booking.AddOnFerry, booking.AddOnExtraDay},
			sel.SelectableAddOns())

		sel = builder.NewSelectionBuilder().WithTour("shkoder-valbona").Build()
		assert.Equal(t,
			[]booking.AddOn{booking.AddOnTransfer, booking.AddOnKayak, booking.AddOnFerry},
			sel.SelectableAddOns())
	})
}

func TestSelectionValidate(t *testing.T) {
	t.Run("a complete selection has no violations", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()
		assert.Empty(t, sel.Validate())
	})

	t.Run("every violation is reported at once", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().
			WithContact("A", "not-an-email", "123").
			Build()

		violations := sel.Validate()
		require.Len(t, violations, 3)

		fields := make([]string, len(violations))
		for i, v := range violations {
			fields[i] = v.Field
		}
		assert.ElementsMatch(t, []string{"name", "email", "phone"}, fields)
	})

	t.Run("name boundary sits at two characters", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithContact("Jo", "jo@example.com", "+355691234567").Build()
		assert.Empty(t, sel.Validate())

		sel = builder.NewSelectionBuilder().WithContact("J", "jo@example.com", "+355691234567").Build()
		violations := sel.Validate()
		require.Len(t, violations, 1)
		assert.Equal(t, "name", violations[0].Field)
		assert.Equal(t, "Name must be at least 2 characters.", violations[0].Message)
	})

	t.Run("phone boundary sits at eight characters", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithContact("Jo", "jo@example.com", "12345678").Build()
		assert.Empty(t, sel.Validate())

		sel = builder.NewSelectionBuilder().WithContact("Jo", "jo@example.com", "1234567").Build()
		violations := sel.Validate()
		require.Len(t, violations, 1)
		assert.Equal(t, "phone", violations[0].Field)
	})
}

func TestSelectionStatusMachine(t *testing.T) {
	t.Run("editing to submitting to confirmed", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()

		require.NoError(t, sel.BeginSubmission(now))
		assert.Equal(t, booking.StatusSubmitting, sel.Status())

		require.NoError(t, sel.Confirm(now))
		assert.Equal(t, booking.StatusConfirmed, sel.Status())
	})

	t.Run("a second begin while submitting is rejected", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()
		require.NoError(t, sel.BeginSubmission(now))

		assert.ErrorIs(t, sel.BeginSubmission(now), booking.ErrNotEditing)
	})

	t.Run("confirm requires a pending submission", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()
		assert.ErrorIs(t, sel.Confirm(now), booking.ErrNotSubmitting)

		require.NoError(t, sel.BeginSubmission(now))
		require.NoError(t, sel.Confirm(now))
		assert.ErrorIs(t, sel.Confirm(now), booking.ErrNotSubmitting)
	})

	t.Run("edits are frozen outside editing", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().Build()
		require.NoError(t, sel.BeginSubmission(now))

		assert.ErrorIs(t, sel.SetTour("shkoder-valbona", now), booking.ErrNotEditing)
		assert.ErrorIs(t, sel.SetDate(now, now), booking.ErrNotEditing)
		assert.ErrorIs(t, sel.SetPaymentMethod(booking.PayNow, now), booking.ErrNotEditing)
		assert.ErrorIs(t, sel.SetContact(booking.ContactInfo{}, now), booking.ErrNotEditing)
	})
}

func TestSelectionClone(t *testing.T) {
	t.Run("clone is independent of the original", func(t *testing.T) {
		sel := builder.NewSelectionBuilder().WithGuests(2, 0, 0).Build()
		dup := sel.Clone()

		require.NoError(t, dup.AdjustGuests(booking.CategoryAdults, booking.Increment, now))
		assert.Equal(t, 2, sel.Adults())
		assert.Equal(t, 3, dup.Adults())
	})
}
