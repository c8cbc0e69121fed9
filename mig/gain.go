// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

// counts tallies complemented versus uncomplemented edges touching n: its
// own fan-ins (excluding any that reference the constant), its fan-out
// edges, and its primary-output entries.
type counts struct {
	comp, uncomp int
}

func (fv *FanoutView) edgeCounts(n z.Var) counts {
	var c counts
	fv.Network.ForEachFanin(n, func(s z.Lit) {
		if fv.IsConstant(s.Var()) {
			return
		}
		if s.Comp() {
			c.comp++
		} else {
			c.uncomp++
		}
	})
	fv.ForEachFanout(n, func(u z.Var) {
		if fv.isFanoutComp(n, u) {
			c.comp++
		} else {
			c.uncomp++
		}
	})
	fv.Network.ForEachPO(func(s z.Lit) {
		if s.Var() != n {
			return
		}
		if s.Comp() {
			c.comp++
		} else {
			c.uncomp++
		}
	})
	return c
}

// oneLevel quantifies the net change in complemented-edge count produced
// by inverting n in place: every complemented edge into n becomes
// uncomplemented and vice versa, so the net gain is the number currently
// complemented minus the number currently uncomplemented. Primary inputs,
// the constant and dead nodes are not inversion candidates and score zero.
func (fv *FanoutView) oneLevel(n z.Var) int {
	if fv.IsPI(n) || fv.IsConstant(n) || fv.IsDead(n) {
		return 0
	}
	c := fv.edgeCounts(n)
	return c.comp - c.uncomp
}

// twoLevel extends oneLevel by crediting the gain recoverable by also
// inverting a fan-out consumer f of n, for every f whose own inversion is
// still profitable once the flip of the shared edge n->f is accounted
// for: that edge's complement moves in the opposite direction of every
// other edge touching f, so its contribution to f's one-level gain is
// worth negating twice over.
func (fv *FanoutView) twoLevel(n z.Var) int {
	gain := fv.oneLevel(n)
	fv.ForEachFanout(n, func(f z.Var) {
		adjust := fv.oneLevel(f)
		if fv.isFanoutComp(n, f) {
			adjust -= 2
		} else {
			adjust += 2
		}
		if adjust > 0 {
			gain += adjust
		}
	})
	return gain
}
