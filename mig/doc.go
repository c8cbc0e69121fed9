// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package mig implements a Majority-Inverter Graph: a network of 3-input
// majority nodes connected by edges that carry a single complement bit.
//
// Network is the node pool: it owns the structural-hash table of majority
// nodes, the primary-output table and the per-node reference counts.
// FanoutView decorates a Network with a reverse index from a node to its
// consumers, kept current by listening to the Network's add/modify/remove
// notifications; the rewriting passes in this package (Minimize and
// Propagate) operate on a FanoutView.
//
// Minimize implements Inverter Minimization: a local, gain-driven rewrite
// that pushes complements through majority nodes to shrink the total count
// of complemented edges.  Propagate implements Inverter Propagation: a
// sink-to-source sweep that drains all complements towards the primary
// inputs and the constant, leaving no complemented internal edge or
// complemented primary output behind.
//
// Both rely on the self-duality of majority-of-three:
//
//	not(Maj(x, y, z)) == Maj(not(x), not(y), not(z))
//
// so inverting all three fan-ins of a node is equivalent to inverting its
// output, and a complement on a node's output edge may be fused with or
// cancelled against a complement on any edge consuming that node.
package mig
