// README: JSON extractor tests.
package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"surrounded by prose", `noise {"a":1} trailing`, `{"a":1}`},
		{"code fence", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`},
		{"already clean", `{"a":1}`, `{"a":1}`},
		{"no brace", "sorry, I cannot help", "sorry, I cannot help"},
		{"closing before opening", "} then {", "} then {"},
		{"empty", "", ""},
		{"braces in trailing prose", `{"a":1} note: use {curly}`, `{"a":1} note: use {curly}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractJSON(tc.in))
		})
	}
}
