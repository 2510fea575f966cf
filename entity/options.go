package entity

import "fmt"

// AggregateBy selects how duplicate-row cell weights are combined.
type AggregateBy uint8

// Supported aggregation methods.
const (
	// AggregateSum adds the weights of duplicate rows (the default).
	AggregateSum AggregateBy = iota

	// AggregateNone drops all but the first occurrence of each level tuple
	// without combining weights; the store then reports no weight column.
	AggregateNone

	// AggregateFirst keeps the first occurrence's weight.
	AggregateFirst

	// AggregateLast keeps the last occurrence's weight.
	AggregateLast

	// AggregateMax keeps the largest weight in each group.
	AggregateMax

	// AggregateMin keeps the smallest weight in each group.
	AggregateMin

	// AggregateMean stores the arithmetic mean of each group's weights.
	// Computed per group (sum/count), not pairwise, so it is exact.
	AggregateMean

	// AggregateCount stores the number of rows in each group.
	AggregateCount
)

var aggregateNames = map[AggregateBy]string{
	AggregateSum:   "sum",
	AggregateNone:  "none",
	AggregateFirst: "first",
	AggregateLast:  "last",
	AggregateMax:   "max",
	AggregateMin:   "min",
	AggregateMean:  "mean",
	AggregateCount: "count",
}

// String returns the canonical lowercase name of the method.
func (a AggregateBy) String() string {
	if s, ok := aggregateNames[a]; ok {
		return s
	}

	return fmt.Sprintf("AggregateBy(%d)", uint8(a))
}

// Valid reports whether a names a supported aggregation method.
func (a AggregateBy) Valid() bool {
	_, ok := aggregateNames[a]
	return ok
}

// Option configures store construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters customizing store construction.
type Options struct {
	// UID is an opaque identifier for the store (used in diagnostics only).
	UID string

	// Static freezes rows, labels, and weights after construction.
	Static bool

	// Weights, when non-nil and of the same length as the normalized rows,
	// is installed verbatim as the weight column.
	Weights []float64

	// WeightColumn names an existing table column to use for weights.
	// Ignored by sources without named columns.
	WeightColumn string

	// Aggregate selects the duplicate-row weight combination method.
	Aggregate AggregateBy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: a mutable store,
// no explicit weights, sum aggregation.
func DefaultOptions() Options {
	return Options{Aggregate: AggregateSum}
}

// WithUID assigns an identifier to the store.
func WithUID(uid string) Option {
	return func(o *Options) { o.UID = uid }
}

// WithStatic makes the store immutable after construction.
func WithStatic() Option {
	return func(o *Options) { o.Static = true }
}

// WithWeights installs w verbatim as the weight column when len(w) equals
// the number of normalized rows. A mismatched length falls through to the
// default all-ones column; it is not an error.
func WithWeights(w []float64) Option {
	return func(o *Options) { o.Weights = w }
}

// WithWeightColumn uses the named table column as the weight column.
// If no such column exists the default all-ones column is used instead.
func WithWeightColumn(name string) Option {
	return func(o *Options) { o.WeightColumn = name }
}

// WithAggregateBy selects the duplicate-row aggregation method.
// An unknown method is an option violation.
func WithAggregateBy(a AggregateBy) Option {
	return func(o *Options) {
		if !a.Valid() {
			o.err = fmt.Errorf("%w: unknown aggregation method %d", ErrOptionViolation, uint8(a))
			return
		}
		o.Aggregate = a
	}
}
