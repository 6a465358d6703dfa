// README: Best-effort isolation of the JSON object inside a model completion.
package itinerary

import "strings"

// ExtractJSON returns the text from the first '{' to the last '}' inclusive.
// Text with no '{', or no '}' after it, is returned unchanged so the decoder reports it.
// Assumes a single top-level object; prose after it that contains '}' is swallowed.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return text
	}
	return text[start : end+1]
}
