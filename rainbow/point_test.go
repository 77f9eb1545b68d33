// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointMutRecomputesHashOnFinalize(t *testing.T) {
	p := FromOwnedFull[Node, *Node](NewBlob([]byte("before")))
	h1 := p.Hash()

	func() {
		m := Mutate(&p)
		defer m.Finalize()
		*m.Value() = NewBlob([]byte("after"))
	}()

	h2 := p.Hash()
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, FullHashOfFull[Node, *Node](NewBlob([]byte("after"))), h2)
}

func TestMutateOnByAddressPanics(t *testing.T) {
	blob := NewBlob([]byte("x"))
	resolver := NewSingularResolver(nil)
	p := FromAddressFull[Node, *Node](Address{Index: 0, Hash: FullHashOfFull[Node, *Node](blob)}, resolver)

	assert.Panics(t, func() { Mutate(&p) })
}

type celsius struct{ Milli int64 }

func (c celsius) ToOutput(out Output) { LE[uint64]{Value: uint64(c.Milli)}.ToOutput(out) }
func (c celsius) AcceptPoints(v RefVisitor) {}
func (c celsius) Tags() Tags { return Leaf("celsius_milli") }
func (c *celsius) ParseInlineRainbow(in *Input) error {
	var le LE[uint64]
	if err := le.ParseInlineRainbow(in); err != nil {
		return err
	}
	c.Milli = int64(le.Value)
	return nil
}

type millidegrees struct{ Value int64 }

func (m millidegrees) ToOutput(out Output) { LE[uint64]{Value: uint64(m.Value)}.ToOutput(out) }
func (m millidegrees) AcceptPoints(v RefVisitor) {}
func (m millidegrees) Tags() Tags { return Leaf("celsius_milli") }
func (m *millidegrees) ParseInlineRainbow(in *Input) error {
	var le LE[uint64]
	if err := le.ParseInlineRainbow(in); err != nil {
		return err
	}
	m.Value = int64(le.Value)
	return nil
}

// celsiusEquivalence implements Equivalent[millidegrees, celsius]: it
// converts the "to" type (millidegrees) to/from the "other" type (celsius)
// that a Point[celsius] is actually stored as.
type celsiusEquivalence struct{}

func (celsiusEquivalence) ToOther(m millidegrees) celsius { return celsius{Milli: m.Value} }
func (celsiusEquivalence) FromOther(c celsius) millidegrees { return millidegrees{Value: c.Milli} }

func TestEquivalentCastPoint(t *testing.T) {
	c := FromOwned[celsius, *celsius](celsius{Milli: 21500})
	m := CastPoint[millidegrees, celsius](c, celsiusEquivalence{})

	assert.Equal(t, c.Hash(), m.Hash())

	got, err := m.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(21500), got.Value)
}
