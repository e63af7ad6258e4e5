package proposal

import "errors"

// Template errors are deployment problems, not caller problems. They
// surface before any mutation begins so a partial document is never
// produced.
var (
	ErrTemplateNotFound = errors.New("proposal template not found")
	ErrSheetNotFound    = errors.New("proposal sheet not found in template")
)

// IsConfigError reports whether err is a deployment or configuration
// failure rather than a caller or runtime failure.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) || errors.Is(err, ErrSheetNotFound)
}
