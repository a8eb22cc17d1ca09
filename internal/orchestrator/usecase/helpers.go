package usecase

import "regexp"

// endpointPattern matches the first slash-path in a request, e.g. "/users/123".
var endpointPattern = regexp.MustCompile(`/[\w/]+`)

// extractEndpoint returns the first slash-path in text, or fallback when
// there is none. It is a heuristic, not a URL parser.
// TODO: reject matches embedded in URLs or dates once a real data-fetch provider lands.
func extractEndpoint(text, fallback string) string {
	if m := endpointPattern.FindString(text); m != "" {
		return m
	}
	return fallback
}
