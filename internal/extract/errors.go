package extract

import "fmt"

// ExtractionError reports a genuine internal fault during extraction (a
// parse step panicking on malformed input), as opposed to a heuristic
// finding nothing, which is absorbed by defaulting.
type ExtractionError struct {
	Identifier string
	Cause      any
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction fault for %q: %v", e.Identifier, e.Cause)
}
