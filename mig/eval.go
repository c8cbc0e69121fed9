// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

// majority returns the boolean majority of a, b and c.
func majority(a, b, c bool) bool {
	return (a && b) || (b && c) || (a && c)
}

// Eval simulates the network on a single assignment to its primary
// inputs, given in the order they were created, and returns the resulting
// value of each primary output, in insertion order.  It panics if vals is
// shorter than the number of primary inputs.
func (n *Network) Eval(vals []bool) []bool {
	vs := make([]bool, n.NumNodes())
	// A rewrite can wire a gate to a node with a higher index, so index
	// order is not always topological: sweep until no gate changes value.
	for changed := true; changed; {
		changed = false
		pi := 0
		for v := 1; v < n.NumNodes(); v++ {
			switch {
			case n.IsPI(z.Var(v)):
				vs[v] = vals[pi]
				pi++
			case n.nodes[v].kind == kindMaj:
				var fi [3]bool
				i := 0
				n.ForEachFanin(z.Var(v), func(s z.Lit) {
					fi[i] = vs[s.Var()] != s.Comp()
					i++
				})
				m := majority(fi[0], fi[1], fi[2])
				changed = changed || m != vs[v]
				vs[v] = m
			}
		}
	}

	out := make([]bool, len(n.po))
	for i, s := range n.po {
		out[i] = vs[s.Var()] != s.Comp()
	}
	return out
}

// Eval64 simulates the network on 64 independent assignments packed
// bitwise into each entry of vals, one entry per primary input in
// creation order, and returns the packed primary-output values in
// insertion order.  It is the bitwise-parallel form of Eval, letting a
// single pass exercise 64 input vectors at once.
func (n *Network) Eval64(vals []uint64) []uint64 {
	vs := make([]uint64, n.NumNodes())
	// As in Eval, sweep until no gate changes value, since index order is
	// not always topological after a rewrite.
	for changed := true; changed; {
		changed = false
		pi := 0
		for v := 1; v < n.NumNodes(); v++ {
			switch {
			case n.IsPI(z.Var(v)):
				vs[v] = vals[pi]
				pi++
			case n.nodes[v].kind == kindMaj:
				var fi [3]uint64
				i := 0
				n.ForEachFanin(z.Var(v), func(s z.Lit) {
					w := vs[s.Var()]
					if s.Comp() {
						w = ^w
					}
					fi[i] = w
					i++
				})
				m := (fi[0] & fi[1]) | (fi[1] & fi[2]) | (fi[0] & fi[2])
				changed = changed || m != vs[v]
				vs[v] = m
			}
		}
	}

	out := make([]uint64, len(n.po))
	for i, s := range n.po {
		w := vs[s.Var()]
		if s.Comp() {
			w = ^w
		}
		out[i] = w
	}
	return out
}
