// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import (
	"testing"

	"github.com/bugraeryilmaz/mig/z"
)

func TestFanoutViewTracksConsumers(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)

	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	m := n.CreateMaj(a, b, c)

	var got []z.Var
	fv.ForEachFanout(a.Var(), func(u z.Var) { got = append(got, u) })
	if len(got) != 1 || got[0] != m.Var() {
		t.Fatalf("ForEachFanout(a) = %v, want [%v]", got, m.Var())
	}
}

func TestFanoutViewSeedsFromExistingNetwork(t *testing.T) {
	n := New()
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	m := n.CreateMaj(a, b, c)

	fv := NewFanoutView(n)
	var got []z.Var
	fv.ForEachFanout(a.Var(), func(u z.Var) { got = append(got, u) })
	if len(got) != 1 || got[0] != m.Var() {
		t.Fatalf("seeded fanout of a = %v, want [%v]", got, m.Var())
	}
}

func TestSubstituteNodePropagatesThroughCollapse(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)

	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	d := n.NewPI()

	inner := n.CreateMaj(a, b, c)
	outer := n.CreateMaj(inner, d, a)
	n.AddPO(outer)

	// Substituting a for inner turns outer into Maj(a, d, a), which
	// collapses to a by trivial reduction, so the substitution has to
	// recurse from inner into outer.  The CreateMaj call below checks
	// that reduction directly.
	alias := n.CreateMaj(a, d, a) // trivially reduces to a, no new node

	fv.SubstituteNode(inner.Var(), a)

	if !n.IsDead(inner.Var()) {
		t.Errorf("inner should be dead after substitution")
	}
	if alias != a {
		t.Fatalf("sanity check failed: alias = %v, want %v", alias, a)
	}
}

func TestSubstituteNodeUpdatesPrimaryOutputs(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)

	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	m := n.CreateMaj(a, b, c)
	n.AddPO(m)
	n.AddPO(m.Not())

	fv.SubstituteNode(m.Var(), a.Not())

	if n.PO(0) != a.Not() {
		t.Errorf("PO(0) = %v, want %v", n.PO(0), a.Not())
	}
	if n.PO(1) != a {
		t.Errorf("PO(1) = %v, want %v", n.PO(1), a)
	}
}
