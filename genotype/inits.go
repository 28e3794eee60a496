// genotype project inits.go
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

import "fmt"

// Inits holds optional overrides for a genotype. A nil field is left alone.
type Inits struct {
	SRW             *float64
	PotFleeceWt     *float64
	MaxMicrons      *float64
	FleeceYield     *float64
	PotMilkYield    *float64
	Conceptions     *[3]float64 // Proportions conceiving 1, 2 and 3 young
	MatureDeathRate *float64    // Annual probabilities
	WeanerDeathRate *float64
}

// InitialiseWithParams applies the overrides in in. Every value is checked
// before p is touched, so a failed call leaves p as it was.
func (p *Params) InitialiseWithParams(in Inits) error {
	deaths := map[AgeClass]*float64{Mature: in.MatureDeathRate, Weaner: in.WeanerDeathRate}
	daily := map[AgeClass]float64{}
	for class, annual := range deaths {
		if annual == nil {
			continue
		}
		d, err := dailyDeathRate(*annual)
		if err != nil {
			return fmt.Errorf("initialising %s: %w", p.Name, err)
		}
		daily[class] = d
	}

	if in.Conceptions != nil {
		for i, r := range in.Conceptions {
			if r < 0 || r > 1 {
				return fmt.Errorf("initialising %s: %w: conception rate %g for %d young", p.Name, ErrDomain, r, i+1)
			}
		}
	}

	q := p.Copy()
	if in.SRW != nil {
		q.SetSRW(*in.SRW)
	}
	if in.PotFleeceWt != nil {
		q.SetPotFleeceWt(*in.PotFleeceWt)
	}
	if in.MaxMicrons != nil {
		q.MaxFleeceDiam = *in.MaxMicrons
	}
	if in.FleeceYield != nil {
		q.WoolC[2] = *in.FleeceYield
	}
	if in.PotMilkYield != nil {
		q.SetPeakMilk(*in.PotMilkYield)
	}
	if in.Conceptions != nil {
		if err := q.SetConceptions(*in.Conceptions); err != nil {
			return fmt.Errorf("initialising %s: %w", p.Name, err)
		}
	}
	for class, d := range daily {
		q.MortRate[class] = d
	}

	*p = *q
	return nil
}
