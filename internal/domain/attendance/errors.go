package attendance

import "errors"

var (
	ErrEntryNotFound = errors.New("attendance entry not found")
	ErrEmptyImport   = errors.New("import contains no rows")
)
