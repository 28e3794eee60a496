// cohort project resize.go
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

// share is the truncated part of target that belongs to an entry holding
// count of total animals
func share(target, count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(int64(target) * int64(count) / int64(total))
}

// Resize rescales the counts so the totals match numMales and numFemales
// exactly. Ages never change. The odd animals left after truncation go into
// the oldest cohorts, one per cohort, wrapping round until none are left.
func (l *Ledger) Resize(numMales, numFemales int) {
	l.Pack()

	switch len(l.entries) {
	case 0:
		l.Input(DefaultAgeDays, numMales, numFemales)
	case 1:
		l.entries[0].NumMales = numMales
		l.entries[0].NumFemales = numFemales
	default:
		currM, currF := l.Totals()
		mLeft, fLeft := numMales, numFemales
		for i := range l.entries {
			e := &l.entries[i]
			m, f := e.NumMales, e.NumFemales

			// A sex that is absent takes the age structure of the other one
			if numMales == 0 || currM > 0 {
				e.NumMales = share(numMales, m, currM)
			} else {
				e.NumMales = share(numMales, f, currF)
			}
			if numFemales == 0 || currF > 0 {
				e.NumFemales = share(numFemales, f, currF)
			} else {
				e.NumFemales = share(numFemales, m, currM)
			}
			mLeft -= e.NumMales
			fLeft -= e.NumFemales
		}

		i := len(l.entries) - 1
		for mLeft > 0 || fLeft > 0 {
			if mLeft > 0 {
				l.entries[i].NumMales++
				mLeft--
			}
			if fLeft > 0 {
				l.entries[i].NumFemales++
				fLeft--
			}
			i--
			if i < 0 {
				i = len(l.entries) - 1
			}
		}
	}
	l.Pack()
}
