// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit is a signal: a Var packed with a single complement bit, the bit being
// the low-order bit.  The zero value is the uncomplemented literal of Var(0),
// the network's constant node, i.e. the constant-false signal.
type Lit uint32

// Var returns the underlying node identified by m, with its sign stripped.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos reports whether m is uncomplemented.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Comp reports whether m is complemented.  It is the complement of IsPos.
func (m Lit) Comp() bool {
	return m&1 == 1
}

// Sign returns 1 for an uncomplemented literal and -1 for a complemented one.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// Not returns the complement of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Dimacs2Lit converts a non-zero signed dimacs integer to a Lit, treating
// its absolute value as a Var.
func Dimacs2Lit(i int) Lit {
	if i < 0 {
		return Var(-i).Neg()
	}
	return Var(i).Pos()
}

// Dimacs returns the signed dimacs integer corresponding to m.
func (m Lit) Dimacs() int {
	if m.IsPos() {
		return int(m.Var())
	}
	return -int(m.Var())
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%s", m.Var())
	}
	return fmt.Sprintf("!%s", m.Var())
}
