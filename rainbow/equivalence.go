// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

// Equivalent declares that U is structurally identical to T: same Tags
// tree, same ToOutput bytes for corresponding values, so a value (or a
// Point) of one can be reinterpreted as the other with no re-encoding.
// Typical use is a newtype wrapper around a shared representation (e.g.
// two differently-named single-field structs around the same Hash).
type Equivalent[T, U any] interface {
	// ToOther converts a T into its U representation.
	ToOther(T) U
	// FromOther converts a U back into T.
	FromOther(U) T
}

// CastPoint reinterprets a Point[U] as a Point[T] via eq, without fetching
// or re-encoding: the returned Point shares the original's hash and fetch
// strategy, only converting the decoded value at the last moment.
func CastPoint[T, U any](p Point[U], eq Equivalent[T, U]) Point[T] {
	return Point[T]{
		tags: p.tags,
		f: &mappedFetcher[T, U]{
			inner: p.f,
			toT:   eq.FromOther,
			toU:   eq.ToOther,
		},
	}
}
