package chesscore

import "fmt"

// FenParseError reports a malformed FEN string, naming the offending field.
type FenParseError struct {
	Field   string
	Message string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("chesscore: invalid FEN field %q: %s", e.Field, e.Message)
}
