// cohort project split_test.go
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

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByAgeTakesOldest(t *testing.T) {
	l := ledgerOf(nil, Entry{100, 5, 5}, Entry{200, 3, 3}, Entry{300, 2, 2})
	out := l.Split(4, 1, true)

	if diff := cmp.Diff([]Entry{{200, 2, 0}, {300, 2, 1}}, out.Entries()); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Entry{{100, 5, 5}, {200, 1, 3}, {300, 0, 1}}, l.Entries()); diff != "" {
		t.Errorf("remainder mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitTooFewDrawsFromUnassigned(t *testing.T) {
	// a third of one animal rounds to zero everywhere, the draw of 0 lands in the youngest
	l := ledgerOf(fixedSource(0), Entry{100, 1, 0}, Entry{200, 1, 0}, Entry{300, 1, 0})
	out := l.Split(1, 0, false)

	assert.Equal(t, []Entry{{100, 1, 0}}, out.Entries())
	assert.Equal(t, []Entry{{200, 1, 0}, {300, 1, 0}}, l.Entries())
}

func TestSplitTooManyDrawsFromAssigned(t *testing.T) {
	// 5/9 of 3 rounds to 2 in each cohort, one too many; a draw near 1 hits the oldest
	l := ledgerOf(fixedSource(0.99), Entry{100, 3, 0}, Entry{200, 3, 0}, Entry{300, 3, 0})
	out := l.Split(5, 0, false)

	assert.Equal(t, []Entry{{100, 2, 0}, {200, 2, 0}, {300, 1, 0}}, out.Entries())
	assert.Equal(t, []Entry{{100, 1, 0}, {200, 1, 0}, {300, 2, 0}}, l.Entries())
}

func TestSplitClampsRequest(t *testing.T) {
	l := ledgerOf(fixedSource(0.5), Entry{100, 2, 1}, Entry{200, 1, 1})
	out := l.Split(10, 10, false)

	m, f := out.Totals()
	assert.Equal(t, 3, m)
	assert.Equal(t, 2, f)
	assert.Equal(t, 0, l.Count())
}

func TestSplitConserves(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		l := randomLedger(rnd)
		l.Pack()
		before := l.Copy(nil)
		totM, totF := l.Totals()
		m, f := 0, 0
		if totM > 0 {
			m = rnd.Intn(totM + 1)
		}
		if totF > 0 {
			f = rnd.Intn(totF + 1)
		}
		byAge := trial%2 == 0

		out := l.Split(m, f, byAge)

		gotM, gotF := out.Totals()
		require.Equal(t, m, gotM, "trial %d males", trial)
		require.Equal(t, f, gotF, "trial %d females", trial)

		restored := l.Copy(nil)
		restored.Merge(out)
		if diff := cmp.Diff(before.Entries(), restored.Entries()); diff != "" {
			t.Fatalf("trial %d lost animals (-want +got):\n%s", trial, diff)
		}
		for _, e := range l.Entries() {
			require.GreaterOrEqual(t, e.NumMales, 0)
			require.GreaterOrEqual(t, e.NumFemales, 0)
		}
	}
}

func TestSplitSeededIsReproducible(t *testing.T) {
	build := func() *Ledger {
		return ledgerOf(rand.New(rand.NewSource(7)),
			Entry{100, 7, 3}, Entry{400, 5, 9}, Entry{800, 3, 11}, Entry{1200, 1, 1})
	}
	a, b := build(), build()
	assert.Equal(t, a.Split(6, 7, false).Entries(), b.Split(6, 7, false).Entries())
}
