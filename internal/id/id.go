package id

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatZoneID derives a zone ID from a label: "Non-Current Assets" ->
// "non-current-assets". Runs of anything other than letters and digits
// collapse to a single hyphen.
func FormatZoneID(label string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// ParseZoneID checks that id is already in canonical form.
func ParseZoneID(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("empty zone ID")
	}
	if FormatZoneID(id) != id {
		return "", fmt.Errorf("invalid zone ID %q: want lowercase words joined by single hyphens", id)
	}
	return id, nil
}
