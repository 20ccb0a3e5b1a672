package parsing

import "fmt"

// UnsupportedTypeError indicates an unrecognized document category at the
// top-level entry point. It is the one failure the parser does not degrade
// gracefully from.
type UnsupportedTypeError struct {
	DocType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.DocType)
}
