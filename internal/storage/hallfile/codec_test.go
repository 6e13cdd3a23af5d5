package hallfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConcertLine(t *testing.T) {
	t.Parallel()

	t.Run("multi-word names run until the date token", func(t *testing.T) {
		rec, err := parseConcertLine("The Big Gig 2024-05-01 10.00 7.50 5.00")
		require.NoError(t, err)
		assert.Equal(t, "The Big Gig", rec.Name)
		assert.Equal(t, "2024-05-01", rec.Date)
		assert.Equal(t, [3]float64{10, 7.5, 5}, rec.Prices)
	})

	t.Run("malformed lines", func(t *testing.T) {
		for name, line := range map[string]string{
			"no date":           "The Big Gig 10.00 7.50 5.00",
			"name missing":      "2024-05-01 10.00 7.50 5.00",
			"too few prices":    "Gig 2024-05-01 10.00 7.50",
			"too many prices":   "Gig 2024-05-01 10.00 7.50 5.00 1.00",
			"price not numeric": "Gig 2024-05-01 10.00 cheap 5.00",
			"negative price":    "Gig 2024-05-01 10.00 -7.50 5.00",
		} {
			_, err := parseConcertLine(line)
			assert.Error(t, err, name)
		}
	})
}

func TestParseCustomerLine(t *testing.T) {
	t.Parallel()

	t.Run("name runs until the first boolean token", func(t *testing.T) {
		rec, err := parseCustomerLine("Daniel Black true false")
		require.NoError(t, err)
		assert.Equal(t, customerRecord{Name: "Daniel Black", GoldEntitled: true, SilverEntitled: false}, rec)
	})

	t.Run("boolean tokens are case-insensitive", func(t *testing.T) {
		rec, err := parseCustomerLine("Alice FALSE True")
		require.NoError(t, err)
		assert.Equal(t, customerRecord{Name: "Alice", GoldEntitled: false, SilverEntitled: true}, rec)
	})

	t.Run("the first token always belongs to the name", func(t *testing.T) {
		rec, err := parseCustomerLine("True Lies false true")
		require.NoError(t, err)
		assert.Equal(t, customerRecord{Name: "True Lies", GoldEntitled: false, SilverEntitled: true}, rec)

		rec, err = parseCustomerLine("False true false")
		require.NoError(t, err)
		assert.Equal(t, customerRecord{Name: "False", GoldEntitled: true, SilverEntitled: false}, rec)
	})

	t.Run("malformed lines", func(t *testing.T) {
		for name, line := range map[string]string{
			"no flags":             "Daniel Black",
			"one flag":             "Daniel Black true",
			"boolean name no flag": "true false",
			"extra tokens":         "Alice true false extra",
			"second no bool":       "Alice true maybe",
		} {
			_, err := parseCustomerLine(line)
			assert.Error(t, err, name)
		}
	})
}

func TestParseSeatLine(t *testing.T) {
	t.Parallel()

	t.Run("bookee runs to end of line", func(t *testing.T) {
		rec, err := parseSeatLine("A 1 Daniel Black")
		require.NoError(t, err)
		assert.Equal(t, seatRecord{Row: 'A', Number: 1, Bookee: "Daniel Black"}, rec)
	})

	t.Run("row letters fold to upper case", func(t *testing.T) {
		rec, err := parseSeatLine("i 10 Bob")
		require.NoError(t, err)
		assert.Equal(t, byte('I'), rec.Row)
		assert.Equal(t, 10, rec.Number)
	})

	t.Run("malformed lines", func(t *testing.T) {
		for name, line := range map[string]string{
			"row out of range":   "J 1 Bob",
			"row not a letter":   "7 1 Bob",
			"row too long":       "AA 1 Bob",
			"number not numeric": "A one Bob",
			"number below range": "A 0 Bob",
			"number above range": "A 11 Bob",
			"bookee missing":     "A 1",
		} {
			_, err := parseSeatLine(line)
			assert.Error(t, err, name)
		}
	})
}
