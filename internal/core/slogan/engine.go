package slogan

import "fmt"

// =============================================================================
// Generation
// =============================================================================

const (
	primaryCount  = 5
	patternCount  = 3
	rhetoricCount = 2
)

// Generate builds the slogan batch for a request.
//
// The batch always has five primary slogans from the tone bank, three from the
// creative patterns and two from the rhetoric devices. When two or more
// keywords are given a combination slogan is appended, for eleven in total.
// Keywords rotate by index with offsets of zero, one and two for the three
// groups. An empty keyword list substitutes the empty string.
func Generate(req Request) []Slogan {
	bank := Bank(req.Tone)

	out := make([]Slogan, 0, primaryCount+patternCount+rhetoricCount+1)

	for i := 0; i < primaryCount; i++ {
		out = append(out, Slogan{
			ID:   fmt.Sprintf("slogan-%d", i+1),
			Text: Substitute(bank[i%len(bank)], req.values(i)),
		})
	}

	for i := 0; i < patternCount; i++ {
		out = append(out, Slogan{
			ID:   fmt.Sprintf("slogan-pattern-%d", i+1),
			Text: Substitute(creativePatterns[i%len(creativePatterns)], req.values(i+1)),
		})
	}

	for i := 0; i < rhetoricCount; i++ {
		out = append(out, Slogan{
			ID:   fmt.Sprintf("slogan-rhetoric-%d", i+1),
			Text: Substitute(rhetoricDevices[i%len(rhetoricDevices)], req.values(i+2)),
		})
	}

	if len(req.Keywords) > 1 {
		v := req.values(0)
		v.CombinedKeywords = req.Keywords[0] + " " + req.Keywords[1]
		out = append(out, Slogan{
			ID:   "slogan-combo-1",
			Text: Substitute(comboTemplate, v),
		})
	}

	return out
}

// values returns the substitution values using the keyword at index i,
// wrapping around the keyword list.
func (r Request) values(i int) Values {
	v := Values{
		Company:  r.CompanyName,
		Industry: r.Industry,
	}
	if n := len(r.Keywords); n > 0 {
		v.Keyword = r.Keywords[i%n]
	}
	return v
}
