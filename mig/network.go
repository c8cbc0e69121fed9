// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

type kind uint8

const (
	kindConst kind = iota
	kindPI
	kindMaj
)

type node struct {
	kind       kind
	c0, c1, c2 z.Lit
	refs       uint32
	dead       bool
}

// fanin3 is the canonical (sorted) key under which a majority node is
// structurally hashed.
type fanin3 struct {
	a, b, c z.Lit
}

type addListener func(v z.Var)
type modListener func(m, old z.Var, s z.Lit)
type removeListener func(v z.Var, c0, c1, c2 z.Lit)

// Network is the node pool for a majority-inverter graph: it owns the node
// storage, the structural-hash table of majority nodes, the primary-output
// table and the per-node reference counts.  Network alone does not track
// fan-out; wrap it in a FanoutView for the rewriting passes.
type Network struct {
	nodes  []node
	strash map[fanin3]z.Var
	po     []z.Lit

	onAdd    []addListener
	onModify []modListener
	onRemove []removeListener
}

// New creates an empty network.  Node 0 is reserved for the constant; Zero()
// and One() return its two signals.
func New() *Network {
	n := &Network{
		nodes:  make([]node, 1, 64),
		strash: make(map[fanin3]z.Var, 64),
	}
	n.nodes[0] = node{kind: kindConst, dead: false}
	return n
}

// Zero returns the constant-false signal.
func Zero() z.Lit { return z.Var(0).Pos() }

// One returns the constant-true signal.
func One() z.Lit { return z.Var(0).Neg() }

// NewPI appends a fresh primary input and returns its uncomplemented signal.
func (n *Network) NewPI() z.Lit {
	v := z.Var(len(n.nodes))
	n.nodes = append(n.nodes, node{kind: kindPI})
	return v.Pos()
}

// AddPO appends s as a new primary-output entry, bumping its reference
// count.  Duplicate entries, including repeats of the same signal, are
// permitted.
func (n *Network) AddPO(s z.Lit) {
	n.po = append(n.po, s)
	n.bumpRef(s.Var())
}

// NumPOs returns the number of primary-output entries.
func (n *Network) NumPOs() int { return len(n.po) }

// PO returns the i'th primary-output signal, in insertion order.
func (n *Network) PO(i int) z.Lit { return n.po[i] }

// IsPI reports whether v is a primary input.
func (n *Network) IsPI(v z.Var) bool { return n.nodes[v].kind == kindPI }

// IsConstant reports whether v is the network's constant node.
func (n *Network) IsConstant(v z.Var) bool { return v == 0 }

// IsDead reports whether v has been removed from the live set.
func (n *Network) IsDead(v z.Var) bool { return n.nodes[v].dead }

// FanoutSize returns the reference count of v: the number of live fan-in
// and primary-output occurrences of v's index.
func (n *Network) FanoutSize(v z.Var) uint32 { return n.nodes[v].refs }

// NumNodes returns one past the highest node index ever allocated, live or
// dead.
func (n *Network) NumNodes() int { return len(n.nodes) }

// ForEachFanin visits v's fan-in signals in positional order.  It is a
// no-op for primary inputs and the constant.
func (n *Network) ForEachFanin(v z.Var, f func(z.Lit)) {
	nd := &n.nodes[v]
	if nd.kind != kindMaj {
		return
	}
	f(nd.c0)
	f(nd.c1)
	f(nd.c2)
}

// ForEachGate visits every live majority node in index order.
func (n *Network) ForEachGate(f func(z.Var)) {
	for i := 1; i < len(n.nodes); i++ {
		nd := &n.nodes[i]
		if nd.kind == kindMaj && !nd.dead {
			f(z.Var(i))
		}
	}
}

// ForEachPO visits primary-output entries in insertion order.
func (n *Network) ForEachPO(f func(z.Lit)) {
	for _, s := range n.po {
		f(s)
	}
}

// NumGates returns the number of live majority nodes.
func (n *Network) NumGates() int {
	c := 0
	n.ForEachGate(func(z.Var) { c++ })
	return c
}

// ComplementCount returns the number of complemented fan-in edges plus the
// number of complemented primary-output entries currently in the network.
func (n *Network) ComplementCount() int {
	c := 0
	n.ForEachGate(func(v z.Var) {
		n.ForEachFanin(v, func(s z.Lit) {
			if s.Comp() {
				c++
			}
		})
	})
	n.ForEachPO(func(s z.Lit) {
		if s.Comp() {
			c++
		}
	})
	return c
}

// OnAdd registers f to be called with the index of every node appended to
// the pool, after its fan-in references have been counted.
func (n *Network) OnAdd(f func(v z.Var)) { n.onAdd = append(n.onAdd, f) }

// OnModify registers f to be called whenever a live node's fan-in is
// rewired from old to s via ReplaceInNode.
func (n *Network) OnModify(f func(m, old z.Var, s z.Lit)) { n.onModify = append(n.onModify, f) }

// OnRemove registers f to be called when a node is taken out of the live
// set, passing its former fan-in signals (zero values for non-majority
// nodes).
func (n *Network) OnRemove(f func(v z.Var, c0, c1, c2 z.Lit)) {
	n.onRemove = append(n.onRemove, f)
}

func (n *Network) fireAdd(v z.Var) {
	for _, f := range n.onAdd {
		f(v)
	}
}

func (n *Network) fireModify(m, old z.Var, s z.Lit) {
	for _, f := range n.onModify {
		f(m, old, s)
	}
}

func (n *Network) fireRemove(v z.Var, c0, c1, c2 z.Lit) {
	for _, f := range n.onRemove {
		f(v, c0, c1, c2)
	}
}

func (n *Network) bumpRef(v z.Var) { n.nodes[v].refs++ }
func (n *Network) dropRef(v z.Var) { n.nodes[v].refs-- }

// order3 sorts three signals by underlying Var ascending, preserving each
// signal's complement bit.  It is the three-element sorting network used
// to canonicalize a majority node's fan-ins.
func order3(a, b, c z.Lit) (z.Lit, z.Lit, z.Lit) {
	if a.Var() > b.Var() {
		a, b = b, a
	}
	if b.Var() > c.Var() {
		b, c = c, b
	}
	if a.Var() > b.Var() {
		a, b = b, a
	}
	return a, b, c
}

// CreateMaj canonicalizes (a, b, c), applies the trivial majority
// reductions, and consults the structural hash before appending a new
// node.  It never mutates an existing node's fan-ins and never introduces
// a node whose canonical fan-in triple duplicates a live node's.
func (n *Network) CreateMaj(a, b, c z.Lit) z.Lit {
	a, b, c = order3(a, b, c)

	if a.Var() == b.Var() {
		if a == b {
			return a
		}
		return c
	}
	if b.Var() == c.Var() {
		if b == c {
			return b
		}
		return a
	}

	key := fanin3{a, b, c}
	if v, ok := n.strash[key]; ok {
		return v.Pos()
	}

	v := z.Var(len(n.nodes))
	n.nodes = append(n.nodes, node{kind: kindMaj, c0: a, c1: b, c2: c})
	n.strash[key] = v
	n.bumpRef(a.Var())
	n.bumpRef(b.Var())
	n.bumpRef(c.Var())
	n.fireAdd(v)
	return v.Pos()
}

// ReplaceInOutputs retargets every primary-output entry with index old to
// s.Var(), XOR-ing in s's complement, and adjusts reference counts
// accordingly.  It touches every matching entry unconditionally.
func (n *Network) ReplaceInOutputs(old z.Var, s z.Lit) {
	n.replaceInOutputsIf(old, s, func(bool) bool { return true })
}

// replaceInOutputsIf retargets only the primary-output entries with index
// old for which cond(complement) holds.  It backs the selective retarget
// that Inverter Propagation needs and that ReplaceInOutputs specializes to
// the unconditional case.
func (n *Network) replaceInOutputsIf(old z.Var, s z.Lit, cond func(comp bool) bool) {
	for i, po := range n.po {
		if po.Var() != old || !cond(po.Comp()) {
			continue
		}
		n.po[i] = s.Var().Lit(po.Comp() != s.Comp())
		if s.Var() != old {
			n.bumpRef(s.Var())
			n.dropRef(old)
		}
	}
}

// ReplaceInNode rewires every occurrence of old within m's fan-ins to s,
// re-canonicalizing m.  If m collapses to one of its remaining fan-ins via
// trivial reduction, or aliases onto an existing node via the structural
// hash, ReplaceInNode returns that signal and ok is true; the caller must
// propagate the substitution to m's own consumers (see
// FanoutView.SubstituteNode) and is responsible for eventually calling
// TakeOutNode on m once its reference count reaches zero.
func (n *Network) ReplaceInNode(m, old z.Var, s z.Lit) (sub z.Lit, ok bool) {
	nd := &n.nodes[m]
	if nd.kind != kindMaj {
		return 0, false
	}

	oldKey := fanin3{nd.c0, nd.c1, nd.c2}
	remap := func(fi z.Lit) z.Lit {
		if fi.Var() != old {
			return fi
		}
		n.dropRef(old)
		n.bumpRef(s.Var())
		return s.Var().Lit(fi.Comp() != s.Comp())
	}
	c0, c1, c2 := remap(nd.c0), remap(nd.c1), remap(nd.c2)
	delete(n.strash, oldKey)

	a, b, c := order3(c0, c1, c2)
	nd.c0, nd.c1, nd.c2 = a, b, c
	n.fireModify(m, old, s)

	if a.Var() == b.Var() {
		if a == b {
			return a, true
		}
		return c, true
	}
	if b.Var() == c.Var() {
		if b == c {
			return b, true
		}
		return a, true
	}
	if v, ok := n.strash[fanin3{a, b, c}]; ok {
		return v.Pos(), true
	}
	n.strash[fanin3{a, b, c}] = m
	return 0, false
}

// TakeOutNode marks v dead, removes its own entry from the structural hash
// (an entry for the same fan-ins that names the node v aliased onto is
// kept), drops the
// reference counts it held on its own fan-ins, and notifies listeners so
// they can detach v from their fanout sets.  The caller must ensure
// FanoutSize(v) == 0 before calling TakeOutNode.
func (n *Network) TakeOutNode(v z.Var) {
	nd := &n.nodes[v]
	var c0, c1, c2 z.Lit
	if nd.kind == kindMaj {
		c0, c1, c2 = nd.c0, nd.c1, nd.c2
		n.dropRef(c0.Var())
		n.dropRef(c1.Var())
		n.dropRef(c2.Var())
		if key := (fanin3{c0, c1, c2}); n.strash[key] == v {
			delete(n.strash, key)
		}
	}
	nd.dead = true
	n.fireRemove(v, c0, c1, c2)
}
