package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Grade symbol pattern - a letter optionally followed by letters or +/-
	GradeSymbolPattern = `^[A-Za-z][A-Za-z+\-]*$`

	// Grade symbol max length
	GradeSymbolMaxLength = 4

	// Subject name max length
	SubjectNameMaxLength = 100

	// Locale tag pattern, e.g. en-US or ar
	LocalePattern = `^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	GradeSymbol *regexp.Regexp
	Locale      *regexp.Regexp
}{
	GradeSymbol: regexp.MustCompile(GradeSymbolPattern),
	Locale:      regexp.MustCompile(LocalePattern),
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation. Lengths are counted in runes so that
// non-Latin subject names are measured the way users type them.
func (v *StringValidation) Validate() bool {
	value := strings.TrimSpace(v.Value)

	// Check if required
	if v.Required && value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && value == "" {
		return true
	}

	length := utf8.RuneCountInString(value)

	// Check min length
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	// Check pattern
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return false
	}

	return true
}
