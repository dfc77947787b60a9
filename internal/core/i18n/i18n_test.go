package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
		ok    bool
	}{
		{"fr", French, true},
		{"EN", English, true},
		{" en-US ", English, true},
		{"fr-CA", French, true},
		{"de", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLanguage(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, "Générer des slogans", For(French).Form.Generate)
	assert.Equal(t, "Generate Slogans", For(English).Form.Generate)
	assert.Equal(t, French, For("xx").Lang)
	assert.Equal(t, Default, For(Default).Lang)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Français", French.Label())
	assert.Equal(t, "English", English.Label())
}

func TestMessages_NoEmptyStrings(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(string(lang), func(t *testing.T) {
			var empty []string
			collectEmpty(reflect.ValueOf(For(lang)), "Messages", &empty)
			assert.Empty(t, empty, "empty translations")
		})
	}
}

func TestMessages_SameShape(t *testing.T) {
	assert.Len(t, english.Privacy.Sections, len(french.Privacy.Sections))
	assert.Len(t, english.Terms.Sections, len(french.Terms.Sections))
	for i := range french.Terms.Sections {
		assert.Len(t, english.Terms.Sections[i].Items, len(french.Terms.Sections[i].Items))
	}
}

func TestFieldError(t *testing.T) {
	m := For(English)
	assert.Equal(t, m.Errors.Company, m.FieldError("company_name", "x"))
	assert.Equal(t, m.Errors.Keywords, m.FieldError("keywords", "x"))
	assert.Equal(t, "x", m.FieldError("style", "x"))
}

// collectEmpty walks v and records the path of every empty string, ignoring
// optional item lists.
func collectEmpty(v reflect.Value, path string, out *[]string) {
	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			*out = append(*out, path)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			collectEmpty(v.Field(i), path+"."+v.Type().Field(i).Name, out)
		}
	case reflect.Slice:
		if v.Len() == 0 && v.Type().Elem().Kind() != reflect.String {
			*out = append(*out, path)
		}
		for i := 0; i < v.Len(); i++ {
			collectEmpty(v.Index(i), path, out)
		}
	}
}
