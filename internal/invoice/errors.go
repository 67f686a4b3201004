// =============================================================================
// Invoice CLI - Error Types
// =============================================================================
//
// The CLI distinguishes two caller-facing error kinds at this layer:
//
//   UsageError - the invocation itself was wrong (no line-item source, two
//                line-item sources, an unparseable flag value). Reported as a
//                plain message, never with a stack trace or usage dump.
//   ParseError - an input file carried a malformed value. Identifies the
//                file, row, and field so the user can fix the offending cell.
//
// Missing-file conditions keep their wrapped os.ErrNotExist, and external
// tool failures are typed in the secretstore package.
//
// =============================================================================

package invoice

import "fmt"

// UsageError reports an invalid invocation.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// usageErrorf builds a UsageError from a format string.
func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError reports a malformed value in a tabular input file (or in the
// --date flag, where Row is zero).
type ParseError struct {
	// File is the path of the input file, empty for flag values.
	File string

	// Row is the 1-indexed data row number, zero for flag values.
	Row int

	// Field is the name of the offending column or flag.
	Field string

	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: row %d: invalid %s: %v", e.File, e.Row, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
