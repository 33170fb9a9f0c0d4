package dataset

import "errors"

var (
	// ErrLoad wraps any failure while reading or parsing the source file.
	// Load-time errors are fatal; the server refuses to start without a
	// complete dataset.
	ErrLoad = errors.New("dataset load failed")

	// ErrYearOutOfRange marks a record whose year falls outside the
	// observation range.
	ErrYearOutOfRange = errors.New("year out of range")

	// ErrNegativeValue marks a CO value below zero or not a finite number.
	ErrNegativeValue = errors.New("invalid CO value")

	// ErrDuplicateRecord marks a second record for the same state and year.
	ErrDuplicateRecord = errors.New("duplicate record")

	// ErrIncomplete marks a dataset with gaps: a state missing a value for
	// an observed year, or a state missing entirely.
	ErrIncomplete = errors.New("incomplete dataset")

	// ErrUnknownState marks a feature whose state name is not one of the 36
	// states or the FCT.
	ErrUnknownState = errors.New("unknown state")
)
