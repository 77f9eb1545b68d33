// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0
//
// This file incorporates work covered by the following copyright and
// permission notice:
//
// Copyright 2019 Dolthub, Inc.
// Licensed under the Apache License, Version 2.0 (the "License");

// Package d holds a handful of defensive-programming helpers used throughout
// rainbow to assert internal invariants. Panicking here is reserved for
// conditions the spec calls "impossible to reach": niche-arithmetic
// contradictions detected at type-descriptor construction, and similar
// programmer errors. Every ordinary fallible path returns an error instead.
package d

import "fmt"

// PanicIfTrue panics if b is true.
func PanicIfTrue(b bool, args ...interface{}) {
	if b {
		panic(msg(args))
	}
}

// PanicIfFalse panics if b is false.
func PanicIfFalse(b bool, args ...interface{}) {
	if !b {
		panic(msg(args))
	}
}

// PanicIfError panics if err is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfNotType panics unless cause's dynamic type matches one of types.
// It returns cause so it can be used inline.
func PanicIfNotType(cause error, types ...error) error {
	if !causeInTypes(cause, types...) {
		panic(fmt.Sprintf("unexpected error type: %T: %v", cause, cause))
	}
	return cause
}

func causeInTypes(cause error, types ...error) bool {
	for _, t := range types {
		if sameType(cause, t) {
			return true
		}
	}
	return false
}

func sameType(a, b error) bool {
	return fmt.Sprintf("%T", a) == fmt.Sprintf("%T", b)
}

func msg(args []interface{}) string {
	if len(args) == 0 {
		return "invariant violated"
	}
	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}
	return fmt.Sprint(args...)
}

type wrappedError struct {
	msg   string
	cause error
}

func (w wrappedError) Error() string { return w.msg }
func (w wrappedError) Cause() error  { return w.cause }

// Wrap annotates cause as a wrappedError so Unwrap/Cause can retrieve it
// later. Wrapping nil returns nil. Wrapping an already-wrapped error is a
// no-op.
func Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	if we, ok := cause.(wrappedError); ok {
		return we
	}
	return wrappedError{msg: cause.Error(), cause: cause}
}

// Unwrap returns the innermost cause of err, or err itself if it isn't a
// wrappedError.
func Unwrap(err error) error {
	if we, ok := err.(wrappedError); ok {
		return we.cause
	}
	return err
}
