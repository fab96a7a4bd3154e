// Provides common postdex errors definitions.
package postdex_errors

import "errors"

var (
	ErrInvalidRecord = errors.New("postdex: record has a negative view count")
	ErrEmptyIndex    = errors.New("postdex: extract from an empty priority index")
	ErrClosed        = errors.New("postdex: catalog is closed")
)
