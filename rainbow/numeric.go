// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

// Unsigned is the set of unsigned integer widths this package gives
// canonical little-endian/big-endian wrappers for.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func widthOf[T Unsigned]() int {
	var v T
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 8
	}
}

// LE is a little-endian fixed-width unsigned integer, the default numeric
// representation throughout the wire format (lengths, offsets, enum tags).
type LE[T Unsigned] struct {
	Value T
}

func (n LE[T]) ToOutput(out Output) {
	w := widthOf[T]()
	var buf [8]byte
	v := uint64(n.Value)
	for i := 0; i < w; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	out.Write(buf[:w])
}

func (n LE[T]) AcceptPoints(v RefVisitor) {}

func (n LE[T]) Tags() Tags {
	w := widthOf[T]()
	return Leaf(leTagName(w))
}

func leTagName(w int) string {
	switch w {
	case 1:
		return "u8"
	case 2:
		return "u16le"
	case 4:
		return "u32le"
	default:
		return "u64le"
	}
}

func (n *LE[T]) ParseInlineRainbow(in *Input) error {
	w := widthOf[T]()
	b, err := in.Take(w)
	if err != nil {
		return err
	}
	var v uint64
	for i := w - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	n.Value = T(v)
	return nil
}

// BE is the big-endian counterpart of LE, used for fields the spec calls
// out as needing cross-platform sort-order-preserving byte layout.
type BE[T Unsigned] struct {
	Value T
}

func (n BE[T]) ToOutput(out Output) {
	w := widthOf[T]()
	var buf [8]byte
	v := uint64(n.Value)
	for i := 0; i < w; i++ {
		buf[w-1-i] = byte(v >> (8 * i))
	}
	out.Write(buf[:w])
}

func (n BE[T]) AcceptPoints(v RefVisitor) {}

func (n BE[T]) Tags() Tags {
	switch widthOf[T]() {
	case 1:
		return Leaf("u8")
	case 2:
		return Leaf("u16be")
	case 4:
		return Leaf("u32be")
	default:
		return Leaf("u64be")
	}
}

func (n *BE[T]) ParseInlineRainbow(in *Input) error {
	w := widthOf[T]()
	b, err := in.Take(w)
	if err != nil {
		return err
	}
	var v uint64
	for i := 0; i < w; i++ {
		v = v<<8 | uint64(b[i])
	}
	n.Value = T(v)
	return nil
}
