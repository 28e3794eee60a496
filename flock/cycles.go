// flock project cycles.go
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

// SeasonConception is the proportion conceiving over cycles oestrous
// cycles when perCycle of those still open conceive in each
func SeasonConception(cycles int, perCycle float64) float64 {
	var cumulative float64
	for c := 0; c < cycles; c++ {
		cumulative += (1.0 - cumulative) * perCycle
	}
	return cumulative
}

// PerCycleConception finds the per cycle rate giving seasonRate over a
// joining of joiningDays. A part cycle at the end of the joining is
// credited pro rata between the rates for the whole cycles either side.
func PerCycleConception(seasonRate float64, joiningDays, cycleDays int) float64 {
	if cycleDays <= 0 || joiningDays <= 0 {
		return 0
	}
	cycles := max(joiningDays/cycleDays, 1)
	m := joiningDays % cycleDays
	if joiningDays < cycleDays {
		m = 0
	}

	frac := 1.0
	if m != 0 {
		frac = float64(m) / float64(cycleDays)
	}

	lower := lowestRate(seasonRate, cycles)
	if m == 0 {
		return lower
	}
	upper := lowestRate(seasonRate, cycles+1)
	return lower + frac*(upper-lower)
}

// lowestRate steps the per cycle rate up until cycles of it reach seek
func lowestRate(seek float64, cycles int) float64 {
	for i := 1; i <= 1000; i++ {
		a := float64(i) / 1000
		if seek <= SeasonConception(cycles, a) {
			return a
		}
	}
	return 1.0
}
