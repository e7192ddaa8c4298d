package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	tooShort := messagePrefix + msgTooShort
	blank := messagePrefix + msgBlank

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{name: "valid", title: "foobar-title", want: nil},
		{name: "exactly three", title: "abc", want: nil},
		{name: "multibyte counts runes", title: "щит", want: nil},
		{name: "empty", title: "", want: []string{tooShort, blank}},
		{name: "too short", title: "ab", want: []string{tooShort}},
		{name: "whitespace only", title: "    ", want: []string{blank}},
		{name: "short whitespace", title: " ", want: []string{tooShort, blank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateTitle(tt.title))
		})
	}
}
