// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import (
	"testing"

	"github.com/bugraeryilmaz/mig/z"
)

func TestPropagateDrainsComplementsFromFanoutAndOutputs(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	d := n.NewPI()

	inner := n.CreateMaj(a, b, c)
	outer := n.CreateMaj(inner.Not(), d, a)
	n.AddPO(outer)
	n.AddPO(inner.Not())

	Propagate(fv, PropagateParams{}, nil)

	n.ForEachGate(func(v z.Var) {
		if c := fv.countComplementedFanout(v); c != 0 {
			t.Errorf("gate %v still has %d complemented fan-out/PO edges after Propagate", v, c)
		}
	})
}

func TestPropagateIsIdempotent(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	d := n.NewPI()

	inner := n.CreateMaj(a, b, c)
	outer := n.CreateMaj(inner.Not(), d, a)
	n.AddPO(outer)

	Propagate(fv, PropagateParams{}, nil)

	stats := Propagate(fv, PropagateParams{}, nil)
	if stats.NumInvertersRemoved != 0 {
		t.Errorf("second Propagate run removed %d more inverters, want 0", stats.NumInvertersRemoved)
	}
}

func TestPropagatePreservesFunction(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	d := n.NewPI()

	inner := n.CreateMaj(a, b, c)
	outer := n.CreateMaj(inner.Not(), d, a)
	n.AddPO(outer)

	before := evalAll(n, 4)
	Propagate(fv, PropagateParams{}, nil)
	after := evalAll(n, 4)

	if before != after {
		t.Fatalf("Propagate changed network function:\nbefore=%v\nafter=%v", before, after)
	}
}

func TestPropagateAliasesRatherThanDuplicating(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	d := n.NewPI()

	// Pre-create the node that draining inner's complement would produce,
	// so the drain must alias onto it instead of creating a duplicate.
	preexisting := n.CreateMaj(a.Not(), b.Not(), c.Not())

	inner := n.CreateMaj(a, b, c)
	outer := n.CreateMaj(inner.Not(), d, a)
	n.AddPO(outer)
	n.AddPO(preexisting)

	before := n.NumNodes()
	Propagate(fv, PropagateParams{}, nil)
	after := n.NumNodes()

	if after > before {
		t.Errorf("Propagate allocated new nodes (%d -> %d) instead of aliasing", before, after)
	}
}
