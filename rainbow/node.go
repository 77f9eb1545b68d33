// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

// NodeKind is the discriminant of a Node: either a leaf Blob carrying raw
// bytes, or a Directory carrying named child references.
type NodeKind int

const (
	KindBlob NodeKind = iota
	KindDirectory
)

func (k NodeKind) Ordinal() int { return int(k) }

const nodeVariantCount = 2

// Entry names one child of a Directory: a UTF-8 name paired with a lazy
// reference to the child Node.
type Entry struct {
	Name  LpString
	Child Point[Node]
}

func (e Entry) ToOutput(out Output) {
	e.Name.ToOutput(out)
	e.Child.ToOutput(out)
}

func (e Entry) AcceptPoints(v RefVisitor) {
	e.Name.AcceptPoints(v)
	e.Child.AcceptPoints(v)
}

// Tags names the child's type as a leaf rather than expanding Node's tree:
// Node's own tree contains entry, so expanding it here would never end.
func (e Entry) Tags() Tags {
	return Compose("entry", e.Name.Tags(), Leaf("node"))
}

func (e *Entry) ParseInlineRainbow(in *Input) error {
	name, err := ParseInline[LpString, *LpString](in)
	if err != nil {
		return err
	}
	child, err := ParsePointInlineFull[Node, *Node](in)
	if err != nil {
		return err
	}
	e.Name = name
	e.Child = child
	return nil
}

// Node is the enum at the center of the object graph this package builds:
// either a Blob (an unbounded raw byte tail) or a Directory (zero or more
// Entry values, read until the input is exhausted). Neither variant's
// payload exposes a usable niche, so Node spends one explicit EnumTag byte
// rather than folding the discriminant into either payload (see niche.go).
type Node struct {
	kind NodeKind
	blob RawBytes
	dir  []Entry
}

// NewBlob builds a leaf Node wrapping raw bytes.
func NewBlob(data []byte) Node {
	return Node{kind: KindBlob, blob: RawBytes{Data: data}}
}

// NewDirectory builds an interior Node from its entries.
func NewDirectory(entries []Entry) Node {
	return Node{kind: KindDirectory, dir: entries}
}

// Kind reports which variant n holds.
func (n Node) Kind() NodeKind { return n.kind }

// Blob returns the raw bytes and true if n is a Blob.
func (n Node) Blob() ([]byte, bool) {
	if n.kind != KindBlob {
		return nil, false
	}
	return n.blob.Data, true
}

// Directory returns the entries and true if n is a Directory.
func (n Node) Directory() ([]Entry, bool) {
	if n.kind != KindDirectory {
		return nil, false
	}
	return n.dir, true
}

func (n Node) ToOutput(out Output) {
	NewEnumTag(uint64(n.kind), nodeVariantCount).ToOutput(out)
	switch n.kind {
	case KindBlob:
		n.blob.ToOutput(out)
	case KindDirectory:
		for _, e := range n.dir {
			e.ToOutput(out)
		}
	}
}

func (n Node) AcceptPoints(v RefVisitor) {
	switch n.kind {
	case KindBlob:
		n.blob.AcceptPoints(v)
	case KindDirectory:
		for i := range n.dir {
			n.dir[i].AcceptPoints(v)
		}
	}
}

func (n Node) Tags() Tags {
	return Compose("node",
		Leaf("blob"),
		Compose("directory", TagsOf[Entry, *Entry]()),
	)
}

// ParseFullRainbow implements FullCodec: Node is the type a Point<Node>
// fetches a whole stored node as, so it owns consuming every remaining
// byte after its discriminant.
func (n *Node) ParseFullRainbow(in *Input) error {
	tag, err := ParseEnumTag(in, nodeVariantCount)
	if err != nil {
		return err
	}
	switch NodeKind(tag.Value) {
	case KindBlob:
		var rb RawBytes
		if err := rb.ParseFullRainbow(in); err != nil {
			return err
		}
		*n = Node{kind: KindBlob, blob: rb}
		return nil
	case KindDirectory:
		var entries []Entry
		for !in.Empty() {
			e, err := ParseInline[Entry, *Entry](in)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		*n = Node{kind: KindDirectory, dir: entries}
		return nil
	default:
		return ErrDiscriminantOverflow
	}
}
