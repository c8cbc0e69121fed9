// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

// PropagateParams configures Propagate.  The zero value selects the
// default behavior.
type PropagateParams struct{}

// PropagateStats reports the outcome of a Propagate call.
type PropagateStats struct {
	// NumInvertersRemoved is the number of complemented edges drained
	// towards the primary inputs and constant.
	NumInvertersRemoved int
	// NodesVisited is the number of times a live gate was popped off the
	// work queue and examined; a gate examined again after one of its
	// consumers was inverted is counted each time.
	NodesVisited int
}

// Propagate runs Inverter Propagation over fv: starting from every primary
// output, it sweeps sink-to-source, and at each gate with at least one
// complemented fan-out edge or complemented primary-output entry, it
// inverts the gate in place so that those edges become uncomplemented,
// pushing the complement back onto the gate's own fan-ins instead.  Every
// popped live, non-terminal gate has its fan-ins enqueued regardless of
// whether it itself needed inverting, so the sweep still reaches gates
// reachable only through uncomplemented edges.  A gate is visited once,
// and again each time one of its consumers is inverted after that visit,
// since the inversion can leave it with a complemented fan-out edge.  When
// it returns, no majority node has a complemented
// fan-out edge or complemented primary-output entry; any remaining
// complement sits on an edge into a primary input or the constant, which
// Propagate cannot push further.
func Propagate(fv *FanoutView, ps PropagateParams, pst *PropagateStats) PropagateStats {
	var stats PropagateStats

	queue := make([]z.Var, 0, fv.NumPOs())
	fv.Network.ForEachPO(func(s z.Lit) { queue = append(queue, s.Var()) })

	visited := make(map[z.Var]bool, fv.NumNodes())

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n] {
			continue
		}
		visited[n] = true

		if fv.IsDead(n) || fv.IsPI(n) || fv.IsConstant(n) {
			continue
		}
		stats.NodesVisited++

		if c := fv.countComplementedFanout(n); c > 0 {
			stats.NumInvertersRemoved += c
			fv.invertDrain(n)
			// The replacement consumes n's fan-ins through flipped edges,
			// which can give an already visited fan-in a complemented
			// consumer, so each fan-in is examined again.
			fv.Network.ForEachFanin(n, func(s z.Lit) { delete(visited, s.Var()) })
		}

		fv.Network.ForEachFanin(n, func(s z.Lit) {
			queue = append(queue, s.Var())
		})
	}

	if pst != nil {
		*pst = stats
	}
	return stats
}

// countComplementedFanout counts the live fan-out edges and
// primary-output entries through which n is currently reached by a
// complemented reference.
func (fv *FanoutView) countComplementedFanout(n z.Var) int {
	c := 0
	fv.ForEachFanout(n, func(u z.Var) {
		if fv.isFanoutComp(n, u) {
			c++
		}
	})
	fv.Network.ForEachPO(func(s z.Lit) {
		if s.Var() == n && s.Comp() {
			c++
		}
	})
	return c
}

// invertDrain inverts n the way Invert does, but retargets only the
// primary-output entries and fan-out edges that were already reached
// through a complemented reference, leaving uncomplemented references to
// n untouched.  It is the selective counterpart Propagate needs: Invert's
// unconditional primary-output retarget would reintroduce a complement on
// every output that reached n positively.
func (fv *FanoutView) invertDrain(n z.Var) z.Lit {
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

	fv.Network.replaceInOutputsIf(n, replacement, func(comp bool) bool { return comp })

	consumers := append([]z.Var(nil), fv.occs[n]...)
	for _, u := range consumers {
		if fv.IsDead(u) || !fv.isFanoutComp(n, u) {
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
