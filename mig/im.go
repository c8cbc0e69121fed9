// Copyright 2024 The Mig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package mig

import "github.com/bugraeryilmaz/mig/z"

// MinimizeParams configures Minimize.  The zero value selects the default
// single-pass behavior.
type MinimizeParams struct {
	// Iterate, if true, repeats the sweep over all gates until a full
	// pass removes no further inverter, instead of stopping after one
	// pass.  The default single-pass behavior matches the effect of the
	// underlying gain formulas reaching a local fixed point quickly, but
	// a second pass can occasionally find gain exposed by the first.
	Iterate bool
}

// MinimizeStats reports the outcome of a Minimize call.
type MinimizeStats struct {
	// NumInvertersRemoved is the net reduction in complemented-edge
	// count across the run.
	NumInvertersRemoved int
	// Rounds is the number of full sweeps over the gate list performed.
	Rounds int
}

// Minimize runs Inverter Minimization over fv: for every majority gate, in
// index order, it inverts the gate in place when one_level reports
// positive gain; otherwise, when two_level reports positive gain instead,
// it inverts the gate and then inverts every fan-out consumer of the
// result whose own one-level gain is positive.  The two checks are
// mutually exclusive per gate: a gate that was inverted by the first
// check is not reconsidered by the second on the same visit.
func Minimize(fv *FanoutView, ps MinimizeParams, pst *MinimizeStats) MinimizeStats {
	var stats MinimizeStats
	for {
		removed := minimizeOnePass(fv)
		stats.NumInvertersRemoved += removed
		stats.Rounds++
		if !ps.Iterate || removed == 0 {
			break
		}
	}
	if pst != nil {
		*pst = stats
	}
	return stats
}

func minimizeOnePass(fv *FanoutView) int {
	removed := 0

	gates := make([]z.Var, 0, fv.NumNodes())
	fv.ForEachGate(func(v z.Var) { gates = append(gates, v) })

	for _, n := range gates {
		if fv.IsDead(n) {
			continue
		}

		if g := fv.oneLevel(n); g > 0 {
			removed += g
			fv.Invert(n, true)
			continue
		}

		if g := fv.twoLevel(n); g > 0 {
			removed += g
			next := fv.Invert(n, true).Var()
			fv.ForEachFanout(next, func(fo z.Var) {
				if fg := fv.oneLevel(fo); fg > 0 {
					fv.Invert(fo, true)
				}
			})
		}
	}

	return removed
}
