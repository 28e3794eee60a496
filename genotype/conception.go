// genotype project conception.go
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package genotype

import (
	"fmt"
	"math"
)

const (
	joiningCycles    = 2.5    // Cycles of joining assumed by the rates at the reference point
	maxSeekRate      = 0.9975 // A target of 1 would leave no sensitivity to condition
	saturatedMid     = 5.0    // Midpoints at or above this mean no conceptions
	noConceptionMid  = 10.0
	rateTolerance    = 1.0e-6
	minSearchStep    = 1.0e-5
	maxRateResidual  = 1.0e-3 // Largest miss accepted once the step has shrunk away
	maxSearchSteps   = 100000
	conceptionScale  = 1.0e5 // Rates are rounded to five places
	midpointStep     = 0.08
	curvatureStep    = -0.05
	stepShrink       = -0.25
	referenceCondxSz = 1.0 // Body condition times relative size at which rates are quoted
)

// ComputeConception is the proportion of mothers conceiving at least litter
// young over the joining, relative to the single-young rate held in
// baseline. Evaluating litter 1 sets baseline.
func ComputeConception(sig Sigmoid, litter int, baseline *float64) (float64, error) {
	crN := 0.0
	if sig.Midpoint < saturatedMid {
		crN = sig.At(referenceCondxSz)
	}
	if litter == 1 {
		*baseline = crN
	}
	if 1.0-*baseline < 0 {
		return 0, fmt.Errorf("%w: single conception rate %g is above one", ErrDomain, *baseline)
	}
	return xdiv(crN, *baseline) * (1.0 - math.Pow(1.0-*baseline, joiningCycles)), nil
}

// Conceptions returns the proportions of mothers conceiving exactly 1, 2
// and 3 young at the reference condition. Litters above MaxYoung are zero.
func (p *Params) Conceptions() ([3]float64, error) {
	var r [3]float64
	baseline := 0.0
	for n := 1; n <= p.MaxYoung; n++ {
		v, err := ComputeConception(p.ConceiveSigs[n-1], n, &baseline)
		if err != nil {
			return r, err
		}
		r[n-1] = math.RoundToEven(v*conceptionScale) / conceptionScale
	}
	for n := 1; n < p.MaxYoung; n++ {
		r[n-1] -= r[n]
	}
	return r, nil
}

// SetConceptions calibrates the conception sigmoids so Conceptions returns
// rates. Litters are fitted from singles upwards because the higher litters
// are quoted relative to the single rate.
//
// Sheep fit the midpoint of each litter's curve. Cattle fit the curvature
// for singles, then use the single curvature and fit the midpoint for
// twins and triplets.
func (p *Params) SetConceptions(rates [3]float64) error {
	for n := 1; n <= p.MaxYoung; n++ {
		seek := 0.0 // Mothers conceiving at least n young
		for q := n; q <= p.MaxYoung; q++ {
			seek += rates[q-1]
		}
		seek = math.Min(seek, maxSeekRate)

		if seek <= 0.0 {
			p.ConceiveSigs[n-1].Midpoint = noConceptionMid
			continue
		}

		sig := p.ConceiveSigs[n-1]
		fitCurvature := false
		switch {
		case p.Animal == Sheep:
		case n == 1:
			fitCurvature = true
		default:
			sig = p.ConceiveSigs[n-2]
		}

		baseline := 0.0
		if n > 1 {
			if _, err := ComputeConception(p.ConceiveSigs[0], 1, &baseline); err != nil {
				return err
			}
		}
		fitted, err := searchSigmoid(sig, fitCurvature, n, seek, baseline)
		if err != nil {
			return fmt.Errorf("calibrating %d young for %s: %w", n, p.Name, err)
		}
		p.ConceiveSigs[n-1] = fitted
	}
	return nil
}

// searchSigmoid steps one parameter of sig until the rate for litter is
// within rateTolerance of seek. Each time the error changes sign the step
// reverses and shrinks by four.
func searchSigmoid(sig Sigmoid, fitCurvature bool, litter int, seek, baseline float64) (Sigmoid, error) {
	param := &sig.Midpoint
	initStep := midpointStep
	if fitCurvature {
		param = &sig.Curvature
		initStep = curvatureStep
	}

	pr, err := ComputeConception(sig, litter, &baseline)
	if err != nil {
		return sig, err
	}
	step := -initStep
	if pr > seek {
		step = math.Abs(initStep)
	}

	for i := 0; ; i++ {
		if i == maxSearchSteps {
			return sig, fmt.Errorf("%w: no sigmoid reaches conception rate %g", ErrDomain, seek)
		}

		prev := pr
		*param += step
		if pr, err = ComputeConception(sig, litter, &baseline); err != nil {
			return sig, err
		}
		if (prev > seek && pr <= seek) || (prev < seek && pr >= seek) {
			step *= stepShrink
		}
		if math.Abs(seek-pr) < rateTolerance {
			return sig, nil
		}
		if math.Abs(step) < minSearchStep {
			if math.Abs(seek-pr) > maxRateResidual {
				return sig, fmt.Errorf("%w: conception search stalled at rate %.5f, wanted %.5f", ErrDomain, pr, seek)
			}
			return sig, nil
		}
	}
}
