// flock project summary.go
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

import "gonum.org/v1/gonum/stat"

// Summary_t condenses the yearly records of a run. The rates are per head
// carried at the end of each year.
type Summary_t struct {
	Years           int // Herd years summarized
	BirthsPerMother float64
	DeathRate       float64
	CullRate        float64
	SaleRate        float64
	PurchaseRate    float64
	MeanAgeDays     float64
}

// SummaryNames labels Summary_t.Values
var SummaryNames = []string{"birthsPerMother", "deathRate", "cullRate", "saleRate", "purchaseRate", "meanAgeDays"}

func Summarize(records []YearRecord_t) Summary_t {
	s := Summary_t{Years: len(records)}
	if len(records) == 0 {
		return s
	}

	var mothers, births, deaths, culled, sold, purchased, head float64
	ages := make([]float64, len(records))
	for i, r := range records {
		mothers += float64(r.Mothers)
		births += float64(r.Births)
		deaths += float64(r.Deaths)
		culled += float64(r.Culled)
		sold += float64(r.Sold)
		purchased += float64(r.Purchased)
		head += float64(r.Males + r.Females)
		ages[i] = float64(r.MeanAge)
	}

	s.BirthsPerMother = ratio(births, mothers)
	s.DeathRate = ratio(deaths, head)
	s.CullRate = ratio(culled, head)
	s.SaleRate = ratio(sold, head)
	s.PurchaseRate = ratio(purchased, head)
	s.MeanAgeDays = stat.Mean(ages, nil)
	return s
}

func (s Summary_t) Values() []float64 {
	return []float64{s.BirthsPerMother, s.DeathRate, s.CullRate, s.SaleRate, s.PurchaseRate, s.MeanAgeDays}
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
