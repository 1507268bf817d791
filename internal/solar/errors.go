package solar

import (
	"errors"
	"fmt"
)

// ErrNoStar indicates the catalog holds no star-category body, so the
// sun accessor has no sensible result.
var ErrNoStar = errors.New("solar: catalog has no star body")

// DataFormatError reports a malformed or missing attribute in a body
// dataset, naming the offending body and field. Load operations fail fast
// on the first violation; nothing is retried.
type DataFormatError struct {
	ID     string
	Field  string
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("solar: body %q: field %q: %s", e.ID, e.Field, e.Reason)
}
