// Package emf decodes enhanced metafiles into records, property trees and
// the links between records.
package emf

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrEmpty indicates the input holds no bytes.
	ErrEmpty = errors.New("emf: empty input")

	// ErrFileClosed indicates the file has been closed.
	ErrFileClosed = errors.New("emf: file is closed")

	// ErrRecordNotFound indicates a record index out of range.
	ErrRecordNotFound = errors.New("emf: record not found")

	// ErrNoHeader indicates the stream does not start with a header record.
	ErrNoHeader = errors.New("emf: missing header record")
)

// FramingError reports a record header that ended the scan. The records
// before it remain available.
type FramingError struct {
	Index  int    // index the record would have had
	Offset int64  // byte offset of the record header
	Size   uint32 // declared record size
	Err    error  // underlying framing condition
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("emf: framing error at record %d (offset 0x%x, size %d): %v",
		e.Index, e.Offset, e.Size, e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }
