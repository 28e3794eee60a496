// cohort project split.go
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
package cohort

import "math"

// Split removes numMales and numFemales animals from l and returns them as a
// new ledger sharing l's random source.
//
// With byAge the oldest animals go into the result. Otherwise the same
// proportion of each cohort is taken and the roundoff is settled by drawing
// single animals at random, so the two age structures match as far as
// integer counts allow. Requests larger than the ledger holds are clamped.
func (l *Ledger) Split(numMales, numFemales int, byAge bool) *Ledger {
	result := New(l.rnd)
	for _, e := range l.entries {
		result.Input(e.AgeDays, 0, 0)
	}

	reqd := [2]int{numMales, numFemales}
	var transfer [2][]int
	for s := range transfer {
		transfer[s] = make([]int, len(l.entries))
	}

	if byAge {
		var done [2]int
		for i := len(l.entries) - 1; i >= 0; i-- {
			for _, s := range []Sex{Male, Female} {
				n := min(reqd[s]-done[s], l.entries[i].count(s))
				if n < 0 {
					n = 0
				}
				transfer[s][i] = n
				done[s] += n
			}
		}
	} else {
		m, f := l.Totals()
		total := [2]int{m, f}
		for _, s := range []Sex{Male, Female} {
			reqd[s] = max(min(reqd[s], total[s]), 0)
			propn := 0.0
			if total[s] > 0 {
				propn = float64(reqd[s]) / float64(total[s])
			}

			done := 0
			for i, e := range l.entries {
				transfer[s][i] = int(math.RoundToEven(propn * float64(e.count(s))))
				done += transfer[s][i]
			}
			l.settleRoundoff(s, transfer[s], done, reqd[s], total[s])
		}
	}

	for i := range l.entries {
		l.entries[i].NumMales -= transfer[Male][i]
		result.entries[i].NumMales += transfer[Male][i]
		l.entries[i].NumFemales -= transfer[Female][i]
		result.entries[i].NumFemales += transfer[Female][i]
	}

	l.Pack()
	result.Pack()
	return result
}

// settleRoundoff adjusts tr one animal at a time until it sums to reqd. Each
// step picks an animal uniformly from those not yet transferred (too few) or
// from those already transferred (too many).
func (l *Ledger) settleRoundoff(s Sex, tr []int, done, reqd, total int) {
	for done < reqd {
		i := l.pick(total-done, func(i int) int { return l.entries[i].count(s) - tr[i] })
		tr[i]++
		done++
	}
	for done > reqd {
		i := l.pick(done, func(i int) int { return tr[i] })
		tr[i]--
		done--
	}
}

// pick draws one of pool animals and returns the index of the cohort owning
// it, scanning cumulative counts. The last cohort takes any draw past the end.
func (l *Ledger) pick(pool int, count func(int) int) int {
	animal := min(int(l.rnd.Float64()*float64(pool)), pool-1)

	last := 0
	for i := range l.entries {
		first := last
		last = first + count(i)
		if animal >= first && animal < last {
			return i
		}
	}
	return len(l.entries) - 1
}
