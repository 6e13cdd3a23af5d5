package app

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
)

const maxCustomerNameLen = 29

// NormalizeCustomerName prepares a user-supplied name for the registry:
// whitespace is collapsed, each word is capitalized ("daniel black"
// becomes "Daniel Black"), and input that is empty, over-long or parses as
// a number is rejected.
func NormalizeCustomerName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", domain.ErrNameRequired
	}
	// The bound counts characters, not bytes, so accented names get
	// the full allowance.
	if utf8.RuneCountInString(name) > maxCustomerNameLen {
		return "", domain.ErrNameTooLong
	}
	if _, err := strconv.ParseFloat(name, 64); err == nil {
		return "", domain.ErrNameNumeric
	}

	words := strings.Fields(strings.ToLower(name))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " "), nil
}
