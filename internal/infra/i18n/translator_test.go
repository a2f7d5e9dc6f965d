//go:build unit

package i18n_test

import (
	"testing"

	"komani-booking/internal/infra/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	tr, err := i18n.NewTranslator()
	require.NoError(t, err)

	t.Run("bundles for both languages load", func(t *testing.T) {
		assert.Equal(t, []string{"en", "sq"}, tr.Languages())
	})

	t.Run("normalize", func(t *testing.T) {
		assert.Equal(t, "en", tr.Normalize("en"))
		assert.Equal(t, "sq", tr.Normalize("sq"))
		assert.Equal(t, "sq", tr.Normalize("SQ-AL"))
		assert.Equal(t, "en", tr.Normalize("en_US"))
		assert.Equal(t, "en", tr.Normalize("de"))
		assert.Equal(t, "en", tr.Normalize(""))
	})

	t.Run("simple lookup", func(t *testing.T) {
		assert.Equal(t, "Booking Request Sent!", tr.T("en", "Booking.successTitle", nil))
		assert.Equal(t, "Kërkesa për Rezervim u Dërgua!", tr.T("sq", "Booking.successTitle", nil))
		assert.Equal(t, "Call", tr.T("en", "Booking.callPrice", nil))
		assert.Equal(t, "Kontakto", tr.T("sq", "Booking.callPrice", nil))
	})

	t.Run("placeholder interpolation", func(t *testing.T) {
		msg := tr.T("en", "Booking.successMessage", map[string]string{
			"name":  "Arben",
			"tour":  "Komani Lake Boat Tour",
			"email": "arben@example.com",
		})
		assert.Equal(t,
			"Thank you Arben! Your request for Komani Lake Boat Tour has been received. We will confirm availability at arben@example.com shortly.",
			msg)
	})

	t.Run("nested tour data lookup", func(t *testing.T) {
		assert.Equal(t, "Komani Lake Boat Tour", tr.T("en", "ToursData.boat-tour.title", nil))
		assert.Equal(t, "Tur me Varkë në Liqenin e Komanit", tr.T("sq", "ToursData.boat-tour.title", nil))
	})

	t.Run("unknown key falls back to the key itself", func(t *testing.T) {
		assert.Equal(t, "Booking.noSuchKey", tr.T("en", "Booking.noSuchKey", nil))
		assert.Equal(t, "Booking.noSuchKey", tr.T("sq", "Booking.noSuchKey", nil))
	})

	t.Run("string lists", func(t *testing.T) {
		inclusions := tr.StringList("en", "ToursData.kayak-rental.inclusions")
		require.Len(t, inclusions, 5)
		assert.Equal(t, "High-quality Kayak rental", inclusions[0])

		assert.Nil(t, tr.StringList("en", "ToursData.no-such-tour.inclusions"))
		// A scalar key is not a list.
		assert.Nil(t, tr.StringList("en", "Booking.successTitle"))
	})
}
