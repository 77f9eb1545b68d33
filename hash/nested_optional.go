// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package hash

// OptionalOptional is the niche-encoded realization of Option<Option<Hash>>:
// still exactly ByteLen bytes, one level deeper in Hash's niche chain than
// Optional. Some(None) reuses Optional's own "none" pattern (all-zero);
// the new outermost None needs a pattern Optional never produces, which is
// 31 zero bytes followed by 0x01 (the next link in the chain).
type OptionalOptional [ByteLen]byte

var noneOuter2 = func() OptionalOptional {
	var o OptionalOptional
	o[ByteLen-1] = 1
	return o
}()

// NoneOuter2 is the "doubly-absent" sentinel for OptionalOptional.
var NoneOuter2 = noneOuter2

// FromOptional wraps an Optional (itself Option<Hash>) as a present
// OptionalOptional.
func FromOptional(o Optional) OptionalOptional {
	return OptionalOptional(o)
}

// Get returns the wrapped Optional and true, or (zero, false) if o is the
// outer-None sentinel.
func (o OptionalOptional) Get() (Optional, bool) {
	if o == noneOuter2 {
		return Optional{}, false
	}
	return Optional(o), true
}

// OptionalOptionalOptional is Option<Option<Option<Hash>>>: one niche link
// deeper still, with outer-None encoded as 31 zero bytes followed by 0x02.
type OptionalOptionalOptional [ByteLen]byte

var noneOuter3 = func() OptionalOptionalOptional {
	var o OptionalOptionalOptional
	o[ByteLen-1] = 2
	return o
}()

// NoneOuter3 is the "triply-absent" sentinel for OptionalOptionalOptional.
var NoneOuter3 = noneOuter3

// FromOptionalOptional wraps an OptionalOptional as a present
// OptionalOptionalOptional.
func FromOptionalOptional(o OptionalOptional) OptionalOptionalOptional {
	return OptionalOptionalOptional(o)
}

// Get returns the wrapped OptionalOptional and true, or (zero, false) if o
// is the outer-None sentinel.
func (o OptionalOptionalOptional) Get() (OptionalOptional, bool) {
	if o == noneOuter3 {
		return OptionalOptional{}, false
	}
	return OptionalOptional(o), true
}
