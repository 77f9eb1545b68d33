// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

// LpBytes is a length-prefixed byte string: an 8-byte little-endian count
// followed by that many bytes. Unlike a raw tail, it is self-delimiting and
// so usable anywhere in a composite, not only as the last field.
type LpBytes struct {
	Data []byte
}

func (l LpBytes) ToOutput(out Output) {
	WriteUint64LE(out, uint64(len(l.Data)))
	out.Write(l.Data)
}

func (l LpBytes) AcceptPoints(v RefVisitor) {}
func (l LpBytes) Tags() Tags                { return Leaf("bytes") }

func (l *LpBytes) ParseInlineRainbow(in *Input) error {
	b, err := in.TakeLengthPrefixed()
	if err != nil {
		return err
	}
	l.Data = append([]byte(nil), b...)
	return nil
}

// LpString is a length-prefixed, UTF-8-validated string.
type LpString struct {
	Data string
}

func (l LpString) ToOutput(out Output) {
	WriteUint64LE(out, uint64(len(l.Data)))
	out.Write([]byte(l.Data))
}

func (l LpString) AcceptPoints(v RefVisitor) {}
func (l LpString) Tags() Tags                { return Leaf("string") }

func (l *LpString) ParseInlineRainbow(in *Input) error {
	s, err := in.TakeUTF8()
	if err != nil {
		return err
	}
	l.Data = s
	return nil
}

// RawBytes is an unbounded byte tail: it has no length prefix and consumes
// every remaining byte of its Input, so it is only ever legal as the sole
// field of a node, or the last field of a composite decoded with
// ParsePairFull.
type RawBytes struct {
	Data []byte
}

func (r RawBytes) ToOutput(out Output)       { out.Write(r.Data) }
func (r RawBytes) AcceptPoints(v RefVisitor) {}
func (r RawBytes) Tags() Tags                { return Leaf("raw_bytes") }

func (r *RawBytes) ParseFullRainbow(in *Input) error {
	r.Data = append([]byte(nil), in.TakeRest()...)
	return nil
}

// ZeroTerminated wraps Data with a trailing 0x00 terminator. It is
// self-delimiting like LpBytes, at the cost of not being able to represent
// bytes containing 0x00: ToOutput does not check Data for an embedded zero
// byte, and decoding stops at the first zero it finds.
type ZeroTerminated struct {
	Data []byte
}

func (z ZeroTerminated) ToOutput(out Output) {
	out.Write(z.Data)
	out.Write([]byte{0})
}

func (z ZeroTerminated) AcceptPoints(v RefVisitor) {}
func (z ZeroTerminated) Tags() Tags                { return Leaf("zero_terminated") }

func (z *ZeroTerminated) ParseInlineRainbow(in *Input) error {
	b, err := in.TakeZeroTerminated()
	if err != nil {
		return err
	}
	z.Data = append([]byte(nil), b...)
	return nil
}
