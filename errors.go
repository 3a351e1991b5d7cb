// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package packedspatial provides the shared coordinate-type tag and
// error taxonomy used by the rtree and kdtree packages: the packed,
// ABI-stable 2-D spatial indexes that are binary-compatible with the
// reference JavaScript libraries flatbush (R-tree) and kdbush (k-d
// tree).
package packedspatial

import (
	"errors"
	"fmt"
)

const packageName = "packedspatial: "

// Kind identifies the category of an Error. Kind is a closed taxonomy:
// callers may compare it with switch or ==, and new values are never
// added without a major version bump.
type Kind int

const (
	// BadNodeSize means a builder was constructed with a node size
	// outside [2, 65535].
	BadNodeSize Kind = iota
	// TooManyItems means more items were added to a builder than its
	// declared capacity.
	TooManyItems
	// NotEnoughItems means Finish was called before the builder's
	// declared capacity was fully added.
	NotEnoughItems
	// BadBuffer means a buffer failed header validation on load: too
	// short, bad magic, bad version, bad coordinate tag, or a length
	// that does not match the size computed from the header fields.
	BadBuffer
	// InvalidCoordinate means a NaN or unrepresentable coordinate was
	// supplied at build time.
	InvalidCoordinate
	// LevelOutOfRange means a level view was requested for a level
	// index outside [0, num_levels).
	LevelOutOfRange
	// TypeMismatch means a query or view was attempted against a
	// coordinate type the index was not built with.
	TypeMismatch
)

func (k Kind) String() string {
	switch k {
	case BadNodeSize:
		return "BadNodeSize"
	case TooManyItems:
		return "TooManyItems"
	case NotEnoughItems:
		return "NotEnoughItems"
	case BadBuffer:
		return "BadBuffer"
	case InvalidCoordinate:
		return "InvalidCoordinate"
	case LevelOutOfRange:
		return "LevelOutOfRange"
	case TypeMismatch:
		return "TypeMismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type returned by construction and parse
// operations across the rtree and kdtree packages. Query operations on
// an already-validated index never return an Error.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s%s: %s: %v", packageName, e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s%s: %s", packageName, e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, allowing
// callers to write errors.Is(err, packedspatial.NewError(packedspatial.BadBuffer, ""))
// style checks via a sentinel of that Kind created with NewError.
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return o.Kind == e.Kind
	}
	return false
}

// NewError constructs an *Error of the given Kind. It is exported so
// that callers can build Kind-only sentinels for use with errors.Is.
func NewError(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// WrapError constructs an *Error of the given Kind that wraps a lower
// level cause.
func WrapError(kind Kind, reason string, cause error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: cause}
}

func textPanic(text string) {
	panic(packageName + text)
}
