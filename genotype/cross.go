// genotype project cross.go
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
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	nameThreshold  = 0.0005 // Breeds below this share are left out of a synthesized name
	onePlaceCutoff = 0.05   // Any share at or under this gives names one decimal place
)

// CrossBreed blends dam and sire into a new genotype. Every numeric
// constant is damPropn*dam + sirePropn*sire; the animal type, dairy flag,
// litter size, ovulation and puberty come from the dam. Ancestries merge by
// base breed. An empty name is synthesized from the ancestry. The parents
// are not changed.
func CrossBreed(name string, dam, sire *Params, damPropn, sirePropn float64) *Params {
	c := dam.Copy()

	dst, d, s := c.Coefficients(), dam.Coefficients(), sire.Coefficients()
	for k, v := range dst {
		blend(v, d[k], s[k], damPropn, sirePropn)
	}
	dstS, dS, sS := c.Scalars(), dam.Scalars(), sire.Scalars()
	for k, v := range dstS {
		*v = damPropn*(*dS[k]) + sirePropn*(*sS[k])
	}
	for i := range c.ConceiveSigs {
		c.ConceiveSigs[i].Midpoint = damPropn*dam.ConceiveSigs[i].Midpoint + sirePropn*sire.ConceiveSigs[i].Midpoint
		c.ConceiveSigs[i].Curvature = damPropn*dam.ConceiveSigs[i].Curvature + sirePropn*sire.ConceiveSigs[i].Curvature
	}

	c.ancestry = nil
	c.addAncestry(dam, damPropn)
	c.addAncestry(sire, sirePropn)

	switch {
	case name != "":
		c.Name = name
	case len(c.ancestry) == 1:
		c.Name = c.ancestry[0].BaseBreed
	case len(c.ancestry) > 1:
		c.Name = ancestryName(c.ancestry)
	}
	return c
}

// CheckProportions is for callers that need a cross to be a whole animal
func CheckProportions(damPropn, sirePropn float64) error {
	if damPropn < 0 || sirePropn < 0 || math.Abs(damPropn+sirePropn-1.0) > 1e-6 {
		return fmt.Errorf("%w: cross proportions %g and %g do not sum to one", ErrDomain, damPropn, sirePropn)
	}
	return nil
}

func blend(dst, a, b []float64, pa, pb float64) {
	copy(dst, a)
	floats.Scale(pa, dst)
	floats.AddScaled(dst, pb, b)
}

func (p *Params) addAncestry(parent *Params, propn float64) {
	for _, a := range parent.Ancestry() {
		i := 0
		for i < len(p.ancestry) && p.ancestry[i].BaseBreed != a.BaseBreed {
			i++
		}
		if i == len(p.ancestry) {
			p.ancestry = append(p.ancestry, Ancestry{BaseBreed: a.BaseBreed})
		}
		p.ancestry[i].Proportion += propn * a.Proportion
	}
}

func ancestryName(anc []Ancestry) string {
	places := 0
	for _, a := range anc {
		if a.Proportion > nameThreshold && a.Proportion <= onePlaceCutoff {
			places = 1
		}
	}

	var parts []string
	for _, a := range anc {
		if a.Proportion > nameThreshold {
			parts = append(parts, a.BaseBreed+" "+percent(a.Proportion, places)+"%")
		}
	}
	return strings.Join(parts, ", ")
}

// percent formats a share as a percentage, rounding halves away from zero
func percent(propn float64, places int) string {
	scale := math.Pow(10, float64(places))
	v := math.Round(100.0*propn*scale) / scale
	return strconv.FormatFloat(v, 'f', places, 64)
}

// Ancestry returns a copy of the breed composition. A set that was never
// initialised or blended is its own pure breed.
func (p *Params) Ancestry() []Ancestry {
	if len(p.ancestry) == 0 {
		return []Ancestry{{BaseBreed: p.Name, Proportion: 1.0}}
	}
	return append([]Ancestry(nil), p.ancestry...)
}

// SetAncestry replaces the breed composition, renormalising the proportions
// so they sum to one
func (p *Params) SetAncestry(anc []Ancestry) error {
	props := make([]float64, len(anc))
	for i, a := range anc {
		if a.Proportion < 0 {
			return fmt.Errorf("%w: negative proportion %g of %s", ErrDomain, a.Proportion, a.BaseBreed)
		}
		props[i] = a.Proportion
	}
	sum := floats.Sum(props)
	if len(anc) > 0 && sum <= 0 {
		return fmt.Errorf("%w: ancestry of %s has no weight", ErrDomain, p.Name)
	}

	p.ancestry = make([]Ancestry, len(anc))
	for i, a := range anc {
		p.ancestry[i] = Ancestry{BaseBreed: a.BaseBreed, Proportion: a.Proportion / sum}
	}
	return nil
}

func (p *Params) ParentageCount() int {
	return max(len(p.ancestry), 1)
}

func (p *Params) ParentageBreed(i int) string {
	if len(p.ancestry) == 0 && i == 0 {
		return p.Name
	}
	return p.ancestry[i].BaseBreed
}

func (p *Params) ParentagePropn(i int) float64 {
	if len(p.ancestry) == 0 && i == 0 {
		return 1.0
	}
	return p.ancestry[i].Proportion
}
