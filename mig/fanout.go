// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

// FanoutView decorates a Network with a reverse index from each node to
// the majority nodes whose fan-in references it.  It keeps the index
// current by subscribing to the Network's add, modify and remove
// notifications, mirroring the forward fan-in edges the Network already
// stores.
type FanoutView struct {
	*Network
	occs [][]z.Var
}

// NewFanoutView builds a FanoutView over n, seeding the reverse index from
// n's current contents and subscribing to future changes.  n must not
// already have fan-out tracked by another FanoutView in the same process,
// or the index will be double-maintained.
func NewFanoutView(n *Network) *FanoutView {
	fv := &FanoutView{Network: n}
	fv.growTo(n.NumNodes())
	n.ForEachGate(func(v z.Var) {
		n.ForEachFanin(v, func(s z.Lit) {
			fv.occs[s.Var()] = append(fv.occs[s.Var()], v)
		})
	})
	n.OnAdd(fv.handleAdd)
	n.OnModify(fv.handleModify)
	n.OnRemove(fv.handleRemove)
	return fv
}

func (fv *FanoutView) growTo(n int) {
	for len(fv.occs) < n {
		fv.occs = append(fv.occs, nil)
	}
}

func (fv *FanoutView) handleAdd(v z.Var) {
	fv.growTo(fv.NumNodes())
	fv.Network.ForEachFanin(v, func(s z.Lit) {
		fv.occs[s.Var()] = append(fv.occs[s.Var()], v)
	})
}

func (fv *FanoutView) handleModify(m, old z.Var, s z.Lit) {
	fv.removeOne(old, m)
	sv := s.Var()
	if sv == old {
		return
	}
	fv.growTo(int(sv) + 1)
	for _, u := range fv.occs[sv] {
		if u == m {
			return
		}
	}
	fv.occs[sv] = append(fv.occs[sv], m)
}

func (fv *FanoutView) handleRemove(v z.Var, c0, c1, c2 z.Lit) {
	if int(v) < len(fv.occs) {
		fv.occs[v] = nil
	}
	if c0 == 0 && c1 == 0 && c2 == 0 {
		return
	}
	fv.removeOne(c0.Var(), v)
	fv.removeOne(c1.Var(), v)
	fv.removeOne(c2.Var(), v)
}

// removeOne drops one occurrence of consumer from src's fanout list.  A
// node that references the same fan-in more than once (e.g. through two
// distinct edges that happen to alias) keeps its remaining occurrences.
func (fv *FanoutView) removeOne(src, consumer z.Var) {
	if int(src) >= len(fv.occs) {
		return
	}
	list := fv.occs[src]
	for i, u := range list {
		if u == consumer {
			fv.occs[src] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// ForEachFanout visits the live majority nodes whose fan-in currently
// references v, in no particular order.
func (fv *FanoutView) ForEachFanout(v z.Var, f func(z.Var)) {
	if int(v) >= len(fv.occs) {
		return
	}
	for _, u := range fv.occs[v] {
		if !fv.IsDead(u) {
			f(u)
		}
	}
}

// isFanoutComp reports whether consumer references v through a
// complemented edge.
func (fv *FanoutView) isFanoutComp(v, consumer z.Var) bool {
	comp := false
	fv.Network.ForEachFanin(consumer, func(s z.Lit) {
		if s.Var() == v && s.Comp() {
			comp = true
		}
	})
	return comp
}

// SubstituteNode rewires every consumer of old, fan-out and primary
// outputs alike, onto s, recursively propagating the substitution if a
// consumer itself collapses or aliases as a result.  Invert uses the same
// propagation for a consumer that collapses or aliases when rewired.
// SubstituteNode leaves old dead with a zero reference count when it
// returns.
func (fv *FanoutView) SubstituteNode(old z.Var, s z.Lit) {
	fv.substitute(old, s)
}

func (fv *FanoutView) substitute(old z.Var, s z.Lit) {
	fv.Network.ReplaceInOutputs(old, s)

	consumers := append([]z.Var(nil), fv.occs[old]...)
	for _, u := range consumers {
		if fv.IsDead(u) {
			continue
		}
		sub, ok := fv.Network.ReplaceInNode(u, old, s)
		if !ok {
			continue
		}
		fv.substitute(u, sub)
	}

	if fv.FanoutSize(old) == 0 && !fv.IsDead(old) {
		fv.TakeOutNode(old)
	}
}
