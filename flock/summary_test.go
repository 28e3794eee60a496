// flock project summary_test.go
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []YearRecord_t{
		{Mothers: 100, Births: 150, Deaths: 10, Culled: 20, Sold: 60, Purchased: 0, Males: 10, Females: 90, MeanAge: 800},
		{Mothers: 100, Births: 110, Deaths: 6, Culled: 20, Sold: 24, Purchased: 40, Males: 10, Females: 90, MeanAge: 1000},
	}
	s := Summarize(records)

	assert.Equal(t, 2, s.Years)
	assert.InDelta(t, 1.3, s.BirthsPerMother, 1e-12)
	assert.InDelta(t, 0.08, s.DeathRate, 1e-12)
	assert.InDelta(t, 0.2, s.CullRate, 1e-12)
	assert.InDelta(t, 0.42, s.SaleRate, 1e-12)
	assert.InDelta(t, 0.2, s.PurchaseRate, 1e-12)
	assert.InDelta(t, 900, s.MeanAgeDays, 1e-12)
	assert.Len(t, s.Values(), len(SummaryNames))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary_t{}, s)

	s = Summarize([]YearRecord_t{{MeanAge: 10}})
	assert.Zero(t, s.BirthsPerMother)
	assert.Zero(t, s.DeathRate)
}

func TestSeasonConception(t *testing.T) {
	assert.Zero(t, SeasonConception(0, 0.6))
	assert.Equal(t, 0.75, SeasonConception(2, 0.5))
	assert.InDelta(t, 0.875, SeasonConception(3, 0.5), 1e-12)
}

func TestPerCycleConception(t *testing.T) {
	assert.InDelta(t, 0.5, PerCycleConception(0.75, 42, 21), 1e-9)

	// A part cycle lies between the whole cycle rates
	r := PerCycleConception(0.75, 52, 21)
	assert.Greater(t, r, 0.371)
	assert.Less(t, r, 0.5)

	assert.Equal(t, 1.0, PerCycleConception(1.0, 17, 17))
	assert.Zero(t, PerCycleConception(0.5, 30, 0))
}
