// Package validation provides pure validation functions for the site, API and CLI.
//
// All functions are pure (no I/O, no side effects). Each validator returns the
// name of the first failing field and a message, or two empty strings when the
// input is valid.
//
// # Functions
//
//   - ValidateSloganRequest: Check the generator form fields
//   - ValidateRating: Check a 1-5 star rating
//
// # Usage
//
// Handlers call these before invoking the slogan engine:
//
//	if field, msg := validation.ValidateSloganRequest(company, industry, keywords); field != "" {
//	    // Return 400 Bad Request with msg
//	}
package validation
