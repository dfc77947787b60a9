package validation

import (
	"fmt"
	"unicode/utf8"
)

// =============================================================================
// Limits
// =============================================================================

const (
	// MaxFieldLength bounds company name, industry and each keyword.
	MaxFieldLength = 100

	// MaxKeywords bounds the number of keywords in one request.
	MaxKeywords = 10

	MinRating = 1
	MaxRating = 5
)

// =============================================================================
// Slogan Request Validation
// =============================================================================

// ValidateSloganRequest validates the generator inputs.
// Fields are checked in form order: company_name, industry, keywords.
//
// Example:
//
//	field, msg := ValidateSloganRequest("Acme", "Widgets", []string{"fast"})
//	if field != "" {
//	    // Handle validation error
//	}
func ValidateSloganRequest(companyName, industry string, keywords []string) (field, message string) {
	if companyName == "" {
		return "company_name", "company_name is required"
	}
	if utf8.RuneCountInString(companyName) > MaxFieldLength {
		return "company_name", fmt.Sprintf("company_name must be at most %d characters", MaxFieldLength)
	}
	if industry == "" {
		return "industry", "industry is required"
	}
	if utf8.RuneCountInString(industry) > MaxFieldLength {
		return "industry", fmt.Sprintf("industry must be at most %d characters", MaxFieldLength)
	}
	if len(keywords) == 0 {
		return "keywords", "keywords are required"
	}
	if len(keywords) > MaxKeywords {
		return "keywords", fmt.Sprintf("at most %d keywords are allowed", MaxKeywords)
	}
	for _, k := range keywords {
		if k == "" {
			return "keywords", "keywords cannot be empty"
		}
		if utf8.RuneCountInString(k) > MaxFieldLength {
			return "keywords", fmt.Sprintf("each keyword must be at most %d characters", MaxFieldLength)
		}
	}
	return "", ""
}

// =============================================================================
// Rating Validation
// =============================================================================

// ValidateRating checks that rating is a whole number of stars from 1 to 5.
func ValidateRating(rating int) (field, message string) {
	if rating < MinRating || rating > MaxRating {
		return "rating", fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return "", ""
}
