package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Room number: 1-10 alphanumerics, e.g. "101" or "B12"
	RoomNumberPattern = `^[A-Za-z0-9]{1,10}$`

	// Block code: one or two uppercase letters
	BlockCodePattern = `^[A-Z]{1,2}$`

	// Phone: optional +, digits, spaces and dashes
	PhonePattern = `^\+?[0-9][0-9 \-]{6,19}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	RoomNumber *regexp.Regexp
	BlockCode  *regexp.Regexp
	Phone      *regexp.Regexp
}{
	RoomNumber: regexp.MustCompile(RoomNumberPattern),
	BlockCode:  regexp.MustCompile(BlockCodePattern),
	Phone:      regexp.MustCompile(PhonePattern),
}

// ValidRoomNumber reports whether s is an acceptable room number.
func ValidRoomNumber(s string) bool {
	return CompiledPatterns.RoomNumber.MatchString(s)
}

// ValidBlockCode reports whether s is an acceptable block code.
func ValidBlockCode(s string) bool {
	return CompiledPatterns.BlockCode.MatchString(s)
}

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}
