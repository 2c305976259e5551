package types

import (
	"errors"
	"fmt"
)

var (
	ErrNoFilesFound = errors.New("no files matching the pattern were found in the directory")
	ErrNoItemsFound = errors.New("no cost items found in any processed file")
)

// ExtractErrorKind distingue as duas camadas de decodificação do envelope.
type ExtractErrorKind int

const (
	ExtractErrorRead ExtractErrorKind = iota
	ExtractErrorOuterParse
	ExtractErrorInnerParse
)

// String returns the human-readable label for the error kind.
func (k ExtractErrorKind) String() string {
	switch k {
	case ExtractErrorRead:
		return "read"
	case ExtractErrorOuterParse:
		return "outer JSON"
	case ExtractErrorInnerParse:
		return "inner JSON"
	default:
		return "unknown"
	}
}

// ExtractError is a recoverable per-file extraction failure. The run logs it
// and continues with an empty row set for the file.
type ExtractError struct {
	File string
	Kind ExtractErrorKind
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.File, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
