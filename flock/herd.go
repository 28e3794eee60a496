// flock project herd.go
// A herd is a genotype, its target numbers and the ledger of its ages
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
package flock

import (
	"fmt"

	"github.com/blgolden/flockDemog/cohort"
	"github.com/blgolden/flockDemog/genotype"
)

type Herd struct {
	Name          string
	Genotype      *genotype.Params
	TargetFemales int
	TargetMales   int

	Ages    *cohort.Ledger
	Records []YearRecord_t // One per simulated year
}

type HerdYear_t struct {
	Herd string
	Year int
}

// YearRecord_t counts what happened to a herd in one year. Males and
// Females are the numbers carried into the next year.
type YearRecord_t struct {
	HerdYear_t
	Mothers   int // Females old enough to breed
	Births    int
	Deaths    int
	Culled    int // Over the age limit
	Sold      int
	Purchased int
	Males     int
	Females   int
	MeanAge   int // Days, after ageing
}

func (r YearRecord_t) String() string {
	return fmt.Sprintf("%-12s %4d %7d %7d %7d %7d %7d %7d %7d %7d %6d",
		r.Herd, r.Year, r.Mothers, r.Births, r.Deaths, r.Culled, r.Sold, r.Purchased,
		r.Males, r.Females, r.MeanAge)
}

// RecordHeader labels the columns of YearRecord_t.String
const RecordHeader = "Herd         Year Mothers  Births  Deaths  Culled    Sold  Bought   Males Females MeanAge"

// MakeFoundationHerd builds a herd whose ages follow ageDist, where
// ageDist[i] is the proportion aged i+1 years, holding exactly the target
// numbers
func MakeFoundationHerd(spec HerdSpec_t, p *genotype.Params, ageDist []float64, rnd cohort.RandomSource) *Herd {
	h := &Herd{
		Name:          spec.Name,
		Genotype:      p,
		TargetFemales: spec.Females,
		TargetMales:   spec.Males,
		Ages:          cohort.New(rnd),
	}
	for i, propn := range ageDist {
		m := int(propn * float64(spec.Males))
		f := int(propn * float64(spec.Females))
		if m > 0 || f > 0 {
			h.Ages.Input((i+1)*daysPerYear, m, f)
		}
	}
	h.Ages.Resize(spec.Males, spec.Females)
	return h
}

// Totals is the number of males and females now in the herd
func (h *Herd) Totals() (males, females int) {
	return h.Ages.Totals()
}
