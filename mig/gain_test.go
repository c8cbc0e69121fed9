// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "testing"

func TestOneLevelGainAllFaninsComplemented(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	m := n.CreateMaj(a.Not(), b.Not(), c.Not())
	n.AddPO(m)

	// 3 complemented fan-in edges, 1 uncomplemented primary-output entry.
	if g := fv.oneLevel(m.Var()); g != 2 {
		t.Errorf("oneLevel = %d, want 2", g)
	}
}

func TestOneLevelGainNoComplements(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	m := n.CreateMaj(a, b, c)
	n.AddPO(m)

	if g := fv.oneLevel(m.Var()); g >= 0 {
		t.Errorf("oneLevel = %d, want negative (inverting would add complements)", g)
	}
}

func TestOneLevelIgnoresConstantFanin(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	m := n.CreateMaj(a.Not(), b.Not(), One())
	n.AddPO(m)

	// Only the two non-constant fan-ins count towards C_in/U_in; both are
	// complemented, and the single PO entry is uncomplemented.
	if g := fv.oneLevel(m.Var()); g != 1 {
		t.Errorf("oneLevel = %d, want 1 (constant fan-in excluded)", g)
	}
}

func TestTwoLevelCreditsProfitableFanoutConsumer(t *testing.T) {
	n := New()
	fv := NewFanoutView(n)
	a := n.NewPI()
	b := n.NewPI()
	c := n.NewPI()
	d := n.NewPI()
	e := n.NewPI()

	inner := n.CreateMaj(a.Not(), b.Not(), c)
	outer := n.CreateMaj(inner, d.Not(), e.Not())
	n.AddPO(outer)

	if g := fv.oneLevel(inner.Var()); g != 0 {
		t.Fatalf("setup check failed: oneLevel(inner) = %d, want 0", g)
	}
	if g := fv.oneLevel(outer.Var()); g != 0 {
		t.Fatalf("setup check failed: oneLevel(outer) = %d, want 0", g)
	}
	if g := fv.twoLevel(inner.Var()); g != 2 {
		t.Errorf("twoLevel(inner) = %d, want 2", g)
	}
}
