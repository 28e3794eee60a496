// cohort project ledger.go
// Age structure of one animal group: numbers of males and females by age in days
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
	"fmt"
	"math"
	"strings"
)

// DefaultAgeDays is used by Resize when there is no age information at all
const DefaultAgeDays = 3 * 365

type Sex int // Index into the per-sex transfer tables

const (
	Male   Sex = 0
	Female Sex = 1
)

// RandomSource supplies uniform draws in [0,1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

type Entry struct {
	AgeDays    int // Age of this cohort in days
	NumMales   int
	NumFemales int
}

func (e Entry) count(s Sex) int {
	if s == Male {
		return e.NumMales
	}
	return e.NumFemales
}

func (e Entry) total() int {
	return e.NumMales + e.NumFemales
}

// Ledger holds the cohorts of an animal group sorted by increasing age.
// Ages are unique. Empty cohorts may exist between calls to Pack.
type Ledger struct {
	entries []Entry
	rnd     RandomSource
}

// New makes an empty ledger drawing from rnd when splitting proportionally
func New(rnd RandomSource) *Ledger {
	return &Ledger{rnd: rnd}
}

// Copy returns a deep copy of the entries. The caller decides whether the copy
// shares this ledger's random source or gets its own.
func (l *Ledger) Copy(rnd RandomSource) *Ledger {
	c := &Ledger{rnd: rnd}
	c.entries = make([]Entry, len(l.entries))
	copy(c.entries, l.entries)
	return c
}

// Count is the number of cohorts, including any not yet packed
func (l *Ledger) Count() int {
	return len(l.entries)
}

func (l *Ledger) At(i int) Entry {
	return l.entries[i]
}

// Entries returns a copy of the cohorts in age order
func (l *Ledger) Entries() []Entry {
	e := make([]Entry, len(l.entries))
	copy(e, l.entries)
	return e
}

func (l *Ledger) Clear() {
	l.entries = l.entries[:0]
}

// Input adds animals at ageDays, keeping the list sorted with no duplicate ages
func (l *Ledger) Input(ageDays, numMales, numFemales int) {
	pos := 0
	for pos < len(l.entries) && l.entries[pos].AgeDays < ageDays {
		pos++
	}
	if pos < len(l.entries) && l.entries[pos].AgeDays == ageDays {
		l.entries[pos].NumMales += numMales
		l.entries[pos].NumFemales += numFemales
		return
	}

	l.entries = append(l.entries, Entry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = Entry{AgeDays: ageDays, NumMales: numMales, NumFemales: numFemales}
}

// Pack gets rid of the empty cohorts
func (l *Ledger) Pack() {
	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.NumMales > 0 || e.NumFemales > 0 {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// AgeBy increases all ages by the same number of days
func (l *Ledger) AgeBy(days int) {
	for i := range l.entries {
		l.entries[i].AgeDays += days
	}
}

// MeanAge of all animals in the list, rounded half to even
func (l *Ledger) MeanAge() int {
	var axn, n float64
	for _, e := range l.entries {
		dn := float64(e.total())
		axn += dn * float64(e.AgeDays)
		n += dn
	}
	if n <= 0 {
		return 0
	}
	return int(math.RoundToEven(axn / n))
}

// GetOlder returns the numbers of males and females aged strictly greater
// than ageDays. A negative ageDays gives the totals.
func (l *Ledger) GetOlder(ageDays int) (numMales, numFemales int) {
	for _, e := range l.entries {
		if e.AgeDays > ageDays {
			numMales += e.NumMales
			numFemales += e.NumFemales
		}
	}
	return
}

// Totals is GetOlder(-1)
func (l *Ledger) Totals() (numMales, numFemales int) {
	return l.GetOlder(-1)
}

// Merge adds every cohort of other into l. Other is not changed.
func (l *Ledger) Merge(other *Ledger) {
	for _, e := range other.entries {
		l.Input(e.AgeDays, e.NumMales, e.NumFemales)
	}
}

// String is a small table used by the verbose output
func (l *Ledger) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s %8s %8s\n", "AgeDays", "Males", "Females")
	for _, e := range l.entries {
		fmt.Fprintf(&b, "%8d %8d %8d\n", e.AgeDays, e.NumMales, e.NumFemales)
	}
	return b.String()
}
