// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

// Invert replaces n's function with its complement by flipping all three
// of n's fan-in edges and creating (or aliasing onto) the resulting
// majority node, using the self-duality identity
//
//	not(Maj(x, y, z)) == Maj(not(x), not(y), not(z))
//
// Every primary-output entry that referenced n is retargeted to the
// replacement signal.  A fan-out consumer is retargeted unconditionally
// when forceAllConsumers is true; otherwise only consumers that already
// reached n through a complemented edge are retargeted, since those are
// the edges the move leaves uncomplemented.  Every retargeted consumer
// keeps its function, because the replacement signal is equivalent to n's
// former output.  Invert returns the signal that now stands in for n's former,
// uncomplemented output, and leaves n dead once its reference count drops
// to zero.
func (fv *FanoutView) Invert(n z.Var, forceAllConsumers bool) z.Lit {
	if fv.IsPI(n) || fv.IsConstant(n) {
		return n.Pos()
	}

	var fanins [3]z.Lit
	i := 0
	fv.Network.ForEachFanin(n, func(s z.Lit) {
		fanins[i] = s
		i++
	})

	replacement := fv.Network.CreateMaj(fanins[0].Not(), fanins[1].Not(), fanins[2].Not()).Not()

	fv.Network.ReplaceInOutputs(n, replacement)

	consumers := append([]z.Var(nil), fv.occs[n]...)
	for _, u := range consumers {
		if fv.IsDead(u) {
			continue
		}
		if !forceAllConsumers && !fv.isFanoutComp(n, u) {
			continue
		}
		sub, ok := fv.Network.ReplaceInNode(u, n, replacement)
		if !ok {
			continue
		}
		fv.substitute(u, sub)
	}

	if fv.FanoutSize(n) == 0 && !fv.IsDead(n) {
		fv.TakeOutNode(n)
	}
	return replacement
}
