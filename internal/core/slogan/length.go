package slogan

import (
	"fmt"
	"strings"
)

// =============================================================================
// Length Filter
// =============================================================================

// Length classifies slogans by word count for the results filter.
type Length string

const (
	LengthAll    Length = "all"
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

const (
	shortMaxWords  = 4
	mediumMaxWords = 8
)

// Lengths lists the filter tabs in display order.
func Lengths() []Length {
	return []Length{LengthAll, LengthShort, LengthMedium, LengthLong}
}

// ParseLength parses a filter value. The empty string means LengthAll.
func ParseLength(s string) (Length, error) {
	switch l := Length(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LengthAll, nil
	case LengthAll, LengthShort, LengthMedium, LengthLong:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLength, s)
	}
}

// WordCount counts words separated by single spaces.
func WordCount(text string) int {
	return len(strings.Split(text, " "))
}

// LengthOf returns the length class of a slogan text.
func LengthOf(text string) Length {
	switch n := WordCount(text); {
	case n <= shortMaxWords:
		return LengthShort
	case n <= mediumMaxWords:
		return LengthMedium
	default:
		return LengthLong
	}
}

// FilterByLength returns the slogans matching l, preserving order.
func FilterByLength(slogans []Slogan, l Length) []Slogan {
	if l == LengthAll || l == "" {
		return slogans
	}
	out := make([]Slogan, 0, len(slogans))
	for _, s := range slogans {
		if LengthOf(s.Text) == l {
			out = append(out, s)
		}
	}
	return out
}
