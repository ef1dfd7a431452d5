// Package aromatic: options, sentinel errors and the RingError carrier.
//
// Errors:
//
//	ErrInvalidRing    - structural or valence problem in an aromatic ring:
//	                    wrong skeleton degree, unsupported element, illegal
//	                    charge/radical/hydrogen state, triple bond on a ring.
//	ErrKekuleNotFound - the skeleton is well formed but no alternating
//	                    single/double assignment exists.
//
// Both are delivered as *RingError, matched with errors.Is.
package aromatic

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrInvalidRing marks structurally invalid aromatic rings.
	ErrInvalidRing = errors.New("aromatic: invalid aromatic ring")

	// ErrKekuleNotFound marks exhausted Kekulé searches.
	ErrKekuleNotFound = errors.New("aromatic: kekule form not found")
)

// RingError describes a failure tied to a set of atoms.
type RingError struct {
	// Atoms lists the offending atoms, sorted.
	Atoms []int

	// Reason is a short human readable explanation.
	Reason string

	kind error
}

func (e *RingError) Error() string {
	if len(e.Atoms) == 0 {
		return fmt.Sprintf("%v: %s", e.kind, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %v", e.kind, e.Reason, e.Atoms)
}

// Unwrap returns ErrInvalidRing or ErrKekuleNotFound.
func (e *RingError) Unwrap() error { return e.kind }

func invalid(reason string, atoms ...int) error {
	return &RingError{Atoms: atoms, Reason: reason, kind: ErrInvalidRing}
}

// Option configures Thiele, Kekule and EnumerateKekule.
type Option func(*Options)

// Options holds conversion parameters.
type Options struct {
	// FixTautomers moves a pyrrole-like hydrogen from a six-membered donor
	// ring to an odd acceptor ring when both exist. Default true.
	FixTautomers bool

	// FixMetalOrganics neutralizes ferrocene-like and imidazolium-metal
	// charge conventions. Default true.
	FixMetalOrganics bool

	// Logger receives debug traces. Default zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns the defaults used when no Option is given.
func DefaultOptions() Options {
	return Options{FixTautomers: true, FixMetalOrganics: true, Logger: zap.NewNop()}
}

// WithFixTautomers toggles the tautomer repair of Thiele.
func WithFixTautomers(on bool) Option {
	return func(o *Options) { o.FixTautomers = on }
}

// WithFixMetalOrganics toggles the metal-organic charge repair of Thiele.
func WithFixMetalOrganics(on bool) Option {
	return func(o *Options) { o.FixMetalOrganics = on }
}

// WithLogger sets the debug logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("aromatic: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
