package constants

import "strings"

type Category string

const (
	Food          Category = "food"
	Travel        Category = "travel"
	Utilities     Category = "utilities"
	Shopping      Category = "shopping"
	Healthcare    Category = "healthcare"
	Entertainment Category = "entertainment"
	Other         Category = "other"
)

var allCategories = []Category{
	Food,
	Travel,
	Utilities,
	Shopping,
	Healthcare,
	Entertainment,
	Other,
}

// DefaultCategory is used when the model omits the category field.
const DefaultCategory = Other

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsKnown reports whether input matches the closed enumeration. The
// extraction path deliberately does not call this on the decode side;
// the enumeration is only advertised in the model prompt.
func IsKnown(input string) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return true
		}
	}
	return false
}
