package slogan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthOf_Boundaries(t *testing.T) {
	tests := []struct {
		text string
		want Length
	}{
		{"one", LengthShort},
		{"one two three four", LengthShort},
		{"one two three four five", LengthMedium},
		{"one two three four five six seven eight", LengthMedium},
		{"one two three four five six seven eight nine", LengthLong},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LengthOf(tt.text), tt.text)
	}
}

func TestFilterByLength(t *testing.T) {
	slogans := []Slogan{
		{ID: "a", Text: "Short and sweet"},
		{ID: "b", Text: "A slogan of exactly six words"},
		{ID: "c", Text: "This one keeps going and going well past eight words"},
	}

	assert.Equal(t, slogans, FilterByLength(slogans, LengthAll))
	assert.Equal(t, []Slogan{slogans[0]}, FilterByLength(slogans, LengthShort))
	assert.Equal(t, []Slogan{slogans[1]}, FilterByLength(slogans, LengthMedium))
	assert.Equal(t, []Slogan{slogans[2]}, FilterByLength(slogans, LengthLong))
}

func TestParseLength(t *testing.T) {
	l, err := ParseLength("")
	require.NoError(t, err)
	assert.Equal(t, LengthAll, l)

	l, err = ParseLength("MEDIUM")
	require.NoError(t, err)
	assert.Equal(t, LengthMedium, l)

	_, err = ParseLength("huge")
	assert.ErrorIs(t, err, ErrUnknownLength)
}
