package webvtt

import "fmt"

// the single parse failure mode: a token that was not what the
// grammar required at that position. Found is empty when the
// token was missing entirely
type ParseError struct {
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing error: expected %s, got '%s'", e.Expected, e.Found)
}
