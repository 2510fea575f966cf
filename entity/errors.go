package entity

import "errors"

// Sentinel errors for incidence-store construction and mutation.
var (
	// ErrSchema indicates malformed construction input: a ragged 2-D array,
	// a label mapping whose arity does not match the array's column count,
	// an encoded value outside its label range, or fewer than one level.
	ErrSchema = errors.New("entity: malformed construction input")

	// ErrImmutable indicates a mutation was attempted on a static store.
	ErrImmutable = errors.New("entity: store is static")

	// ErrLevel indicates a level index outside [0, Dimsize).
	ErrLevel = errors.New("entity: level out of range")

	// ErrRowIndex indicates a row index outside [0, NumRows).
	ErrRowIndex = errors.New("entity: row index out of range")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("entity: invalid option supplied")
)
