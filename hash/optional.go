// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package hash

// Optional is the fixed-size, niche-encoded analogue of Go's
// "pointer-or-nil" that the spec uses for an inline nullable Hash:
// all-zero means none, any other bit pattern means Some(Hash(bytes)). It is
// the wire-level twin of Hash's niche chain (Option<Hash>, Option<Option<Hash>>,
// ...), grounded on original_source/src/hash.rs's OptionalHash.
type Optional [ByteLen]byte

// None is the reserved "no hash present" sentinel: all-zero bytes.
var None = Optional{}

// FromHash wraps h as a present Optional.
func FromHash(h Hash) Optional {
	return Optional(h)
}

// FromOption converts a (Hash, bool) pair, as produced by Go code that
// prefers not to deal with Optional directly, into an Optional.
func FromOption(h Hash, ok bool) Optional {
	if !ok {
		return None
	}
	return FromHash(h)
}

// Get returns the wrapped Hash and true, or the zero Hash and false if o is
// None.
func (o Optional) Get() (Hash, bool) {
	if o.IsNone() {
		return Hash{}, false
	}
	return Hash(o), true
}

// IsSome reports whether o holds a Hash.
func (o Optional) IsSome() bool {
	return !o.IsNone()
}

// IsNone reports whether o is the all-zero sentinel.
func (o Optional) IsNone() bool {
	return o == None
}

// Unwrap returns the wrapped Hash, panicking if o is None.
func (o Optional) Unwrap() Hash {
	h, ok := o.Get()
	if !ok {
		panic("hash.Optional: unwrap of None")
	}
	return h
}

// Clear resets o to None.
func (o *Optional) Clear() {
	*o = None
}
