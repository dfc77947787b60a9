// Package slogan provides the template-based slogan generator.
//
// This package is part of the functional core. All functions are pure (no I/O,
// no randomness, no clock) so the same request always produces the same batch.
//
// # Functions
//
//   - Generate: Produce a batch of slogans from a Request
//   - Substitute: Replace {company}, {industry}, {keyword} and {combinedKeywords}
//   - ParseKeywords: Split comma-separated keyword input
//   - ParseTone / ParseLength: Parse user-supplied enum values
//   - FilterByLength: Keep only slogans of a given length class
//
// # Usage
//
// The shell validates input with internal/core/validation first, then:
//
//	req := slogan.Request{
//	    CompanyName: "Acme",
//	    Industry:    "Widgets",
//	    Keywords:    slogan.ParseKeywords("fast, safe"),
//	    Tone:        slogan.ToneBold,
//	}
//	batch := slogan.Generate(req)
package slogan
