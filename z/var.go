// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z holds the low-level value types shared across the mig packages:
// Var identifies a node in a network and Lit is a signed reference to a Var.
package z

import "fmt"

// Var identifies a node in a network.  Var(0) is reserved for the network's
// constant node; all other nodes (primary inputs and gates) are numbered in
// the order they were created.
type Var uint32

// Pos returns the uncomplemented literal for v.
func (v Var) Pos() Lit {
	return Lit(v) << 1
}

// Neg returns the complemented literal for v.
func (v Var) Neg() Lit {
	return Lit(v)<<1 | 1
}

// Lit returns the literal for v with the given complement bit.
func (v Var) Lit(comp bool) Lit {
	if comp {
		return v.Neg()
	}
	return v.Pos()
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
