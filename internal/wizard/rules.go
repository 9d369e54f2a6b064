package wizard

import (
	"regexp"
	"strconv"
	"strings"

	"tourapi/internal/utils"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9 ().-]{6,20}$`)
)

// NonEmpty requires a non-blank string in field.
func NonEmpty(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(f Form) bool {
		return strings.TrimSpace(f.Str(field)) != ""
	}}
}

// Email requires a plausible email address in field.
func Email(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(f Form) bool {
		return emailRe.MatchString(strings.TrimSpace(f.Str(field)))
	}}
}

// Phone requires a plausible phone number in field.
func Phone(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(f Form) bool {
		return phoneRe.MatchString(strings.TrimSpace(f.Str(field)))
	}}
}

// FutureDate requires a YYYY-MM-DD date in field that is today or later,
// using the same UTC boundary as the service-side date checks.
func FutureDate(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(f Form) bool {
		return utils.IsFutureDate(f.Str(field))
	}}
}

// MinLen requires the string slice in field to hold at least n non-blank entries.
func MinLen(field string, n int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(f Form) bool {
		count := 0
		for _, s := range f.Strs(field) {
			if strings.TrimSpace(s) != "" {
				count++
			}
		}
		return count >= n
	}}
}

// PositiveInt requires field to hold an integer >= 1, as a number or string.
// Counters often arrive as strings from select inputs.
func PositiveInt(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(f Form) bool {
		if s := strings.TrimSpace(f.Str(field)); s != "" {
			n, err := strconv.Atoi(s)
			return err == nil && n >= 1
		}
		return f.Int(field) >= 1
	}}
}

// Custom wraps an arbitrary predicate for rules with no reusable shape.
func Custom(field, message string, check func(Form) bool) Rule {
	return Rule{Field: field, Message: message, Check: check}
}
