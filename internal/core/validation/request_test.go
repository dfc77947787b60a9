package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// ValidateSloganRequest Tests
// =============================================================================

func TestValidateSloganRequest_AllValid(t *testing.T) {
	field, msg := ValidateSloganRequest("Acme", "Widgets", []string{"fast", "safe"})
	assert.Empty(t, field)
	assert.Empty(t, msg)
}

func TestValidateSloganRequest_MissingCompany(t *testing.T) {
	field, msg := ValidateSloganRequest("", "Widgets", []string{"fast"})
	assert.Equal(t, "company_name", field)
	assert.Equal(t, "company_name is required", msg)
}

func TestValidateSloganRequest_MissingIndustry(t *testing.T) {
	field, msg := ValidateSloganRequest("Acme", "", []string{"fast"})
	assert.Equal(t, "industry", field)
	assert.Equal(t, "industry is required", msg)
}

func TestValidateSloganRequest_MissingKeywords(t *testing.T) {
	field, msg := ValidateSloganRequest("Acme", "Widgets", nil)
	assert.Equal(t, "keywords", field)
	assert.Equal(t, "keywords are required", msg)
}

func TestValidateSloganRequest_ChecksInOrder(t *testing.T) {
	field, _ := ValidateSloganRequest("", "", nil)
	assert.Equal(t, "company_name", field, "should check company_name first")
}

func TestValidateSloganRequest_Limits(t *testing.T) {
	long := strings.Repeat("é", MaxFieldLength+1)

	tests := []struct {
		name     string
		company  string
		industry string
		keywords []string
		field    string
	}{
		{"company too long", long, "Widgets", []string{"a"}, "company_name"},
		{"industry too long", "Acme", long, []string{"a"}, "industry"},
		{"keyword too long", "Acme", "Widgets", []string{long}, "keywords"},
		{"empty keyword", "Acme", "Widgets", []string{"a", ""}, "keywords"},
		{"too many keywords", "Acme", "Widgets", make([]string, MaxKeywords+1), "keywords"},
		{"exactly max length", strings.Repeat("é", MaxFieldLength), "Widgets", []string{"a"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := ValidateSloganRequest(tt.company, tt.industry, tt.keywords)
			assert.Equal(t, tt.field, field)
		})
	}
}

// =============================================================================
// ValidateRating Tests
// =============================================================================

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 2, 3, 4, 5} {
		field, _ := ValidateRating(r)
		assert.Empty(t, field, "rating %d", r)
	}

	for _, r := range []int{-1, 0, 6} {
		field, msg := ValidateRating(r)
		assert.Equal(t, "rating", field)
		assert.Equal(t, "rating must be between 1 and 5", msg)
	}
}
