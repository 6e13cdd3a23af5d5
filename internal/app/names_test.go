package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
)

func TestNormalizeCustomerName(t *testing.T) {
	t.Parallel()

	t.Run("capitalizes each word", func(t *testing.T) {
		for input, want := range map[string]string{
			"daniel black":     "Daniel Black",
			"ALICE":            "Alice",
			"  bob   o'brien ": "Bob O'brien",
			"j r hartley":      "J R Hartley",
		} {
			got, err := NormalizeCustomerName(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got)
		}
	})

	t.Run("length bound counts characters, not bytes", func(t *testing.T) {
		got, err := NormalizeCustomerName(strings.Repeat("é", 29))
		require.NoError(t, err)
		assert.Equal(t, "É"+strings.Repeat("é", 28), got)

		_, err = NormalizeCustomerName(strings.Repeat("é", 30))
		assert.ErrorIs(t, err, domain.ErrNameTooLong)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for input, want := range map[string]error{
			"":     domain.ErrNameRequired,
			"   ":  domain.ErrNameRequired,
			"42":   domain.ErrNameNumeric,
			"-3.5": domain.ErrNameNumeric,
			strings.Repeat("a", 30): domain.ErrNameTooLong,
		} {
			_, err := NormalizeCustomerName(input)
			assert.ErrorIs(t, err, want, input)
		}
	})
}
