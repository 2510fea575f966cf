package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hygra/entity"
)

// Option configures hypergraph construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters customizing hypergraph construction.
type Options struct {
	// Name is an optional display name carried by the hypergraph.
	Name string

	// Static freezes the hypergraph: mutation operations become no-ops
	// reporting false, and the underlying stores are marked immutable.
	Static bool

	// Weights and WeightColumn pass through to the edge store's weight
	// resolver; see entity.WithWeights / entity.WithWeightColumn.
	Weights      []float64
	WeightColumn string

	// Aggregate selects the duplicate-row combination method for the edge
	// store.
	Aggregate entity.AggregateBy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: an unnamed, mutable
// hypergraph with sum aggregation.
func DefaultOptions() Options {
	return Options{Aggregate: entity.AggregateSum}
}

// WithName assigns a display name.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithStatic constructs an immutable hypergraph.
func WithStatic() Option {
	return func(o *Options) { o.Static = true }
}

// WithWeights installs w verbatim as the cell-weight column when its length
// matches the normalized rows; mismatches fall through to all-ones weights.
func WithWeights(w []float64) Option {
	return func(o *Options) { o.Weights = w }
}

// WithWeightColumn uses the named table column as the cell-weight column.
func WithWeightColumn(name string) Option {
	return func(o *Options) { o.WeightColumn = name }
}

// WithAggregateBy selects the duplicate-row aggregation method.
func WithAggregateBy(a entity.AggregateBy) Option {
	return func(o *Options) {
		if !a.Valid() {
			o.err = fmt.Errorf("%w: unknown aggregation method %d", ErrOptionViolation, uint8(a))
			return
		}
		o.Aggregate = a
	}
}

// entityOptions translates hypergraph options to store options.
func (o *Options) entityOptions(uid string) []entity.Option {
	opts := []entity.Option{entity.WithUID(uid), entity.WithAggregateBy(o.Aggregate)}
	if o.Static {
		opts = append(opts, entity.WithStatic())
	}
	if o.Weights != nil {
		opts = append(opts, entity.WithWeights(o.Weights))
	}
	if o.WeightColumn != "" {
		opts = append(opts, entity.WithWeightColumn(o.WeightColumn))
	}

	return opts
}
