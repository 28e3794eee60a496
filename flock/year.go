// flock project year.go
// One year of births, deaths, culling and restocking
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

// SimulateYear steps h through year. Over-age animals are culled, the
// mothers give birth, deaths are drawn for weaners and mature animals,
// the herd is restored to its targets and everything ages a year.
func (h *Herd) SimulateYear(year int, c *Config, rng *Rng) (YearRecord_t, error) {
	r := YearRecord_t{HerdYear_t: HerdYear_t{Herd: h.Name, Year: year}}

	// Culling
	cm, cf := h.Ages.GetOlder(c.MaxAgeYears*daysPerYear - 1)
	h.Ages.Split(cm, cf, true)
	r.Culled = cm + cf

	// Births
	mothers, births, err := h.births(rng)
	if err != nil {
		return r, fmt.Errorf("herd %s year %d: %w", h.Name, year, err)
	}
	r.Mothers = mothers
	if births > 0 {
		males := rng.Binomial(births, 0.5)
		h.Ages.Input(0, males, births-males)
	}
	r.Births = births

	// Deaths
	deaths, err := h.deaths(c.WeanerAgeDays, rng)
	if err != nil {
		return r, fmt.Errorf("herd %s year %d: %w", h.Name, year, err)
	}
	r.Deaths = deaths

	// Sales and purchases
	r.Sold, r.Purchased = h.restock(c.ReplacementAgeDays, rng)

	h.Ages.AgeBy(daysPerYear)
	r.Males, r.Females = h.Ages.Totals()
	r.MeanAge = h.Ages.MeanAge()

	h.Records = append(h.Records, r)
	return r, nil
}

// births draws the litters of this year's mothers. There are none without
// a male old enough to sire them.
func (h *Herd) births(rng *Rng) (mothers, young int, err error) {
	p := h.Genotype
	_, mothers = h.Ages.GetOlder(p.Puberty.Female - 1)
	sires, _ := h.Ages.GetOlder(p.Puberty.Male - 1)
	if mothers == 0 || sires == 0 {
		return mothers, 0, nil
	}

	rates, err := p.Conceptions()
	if err != nil {
		return mothers, 0, err
	}

	// Sequential binomials give a multinomial draw over litter sizes
	remaining := mothers
	left := 1.0
	for k, rate := range rates {
		if remaining == 0 || left <= 0 {
			break
		}
		n := rng.Binomial(remaining, rate/left)
		young += (k + 1) * n
		remaining -= n
		left -= rate
	}
	return mothers, young, nil
}

// deaths draws deaths separately for weaners and older animals
func (h *Herd) deaths(weanerAgeDays int, rng *Rng) (int, error) {
	om, of := h.Ages.GetOlder(weanerAgeDays - 1)
	mature := h.Ages.Split(om, of, true)
	weaners := h.Ages

	total := 0
	for _, g := range []struct {
		ages  *cohort.Ledger
		class genotype.AgeClass
	}{{mature, genotype.Mature}, {weaners, genotype.Weaner}} {
		rate, err := h.Genotype.AnnualDeaths(g.class)
		if err != nil {
			return 0, err
		}
		m, f := g.ages.Totals()
		dm, df := rng.Binomial(m, rate), rng.Binomial(f, rate)
		g.ages.Split(dm, df, false)
		total += dm + df
	}

	h.Ages.Merge(mature)
	return total, nil
}

// restock sells surplus animals, youngest first, or buys the shortfall at
// replacementAgeDays
func (h *Herd) restock(replacementAgeDays int, rng cohort.RandomSource) (sold, purchased int) {
	males, females := h.Ages.Totals()
	sellM, sellF := max(males-h.TargetMales, 0), max(females-h.TargetFemales, 0)
	buyM, buyF := max(h.TargetMales-males, 0), max(h.TargetFemales-females, 0)

	if sellM > 0 || sellF > 0 {
		// What is left after the oldest are set aside is the surplus
		older := h.Ages.Split(males-sellM, females-sellF, true)
		h.Ages.Clear()
		h.Ages.Merge(older)
		sold = sellM + sellF
	}

	if buyM > 0 || buyF > 0 {
		bought := cohort.New(rng)
		bought.Input(replacementAgeDays, buyM, buyF)
		h.Ages.Merge(bought)
		purchased = buyM + buyF
	}
	return sold, purchased
}
