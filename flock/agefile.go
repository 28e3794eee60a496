// flock project agefile.go
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
	"io"
)

// WriteAgeDistribution writes one line for h: the herd, the year and the
// number of females at each whole year of age from 0 to maxAgeYears.
// Older females are counted in the last column.
func WriteAgeDistribution(w io.Writer, h *Herd, year, maxAgeYears int) error {
	ageCounts := make([]int, maxAgeYears+1)
	for _, e := range h.Ages.Entries() {
		a := e.AgeDays / daysPerYear
		if a > maxAgeYears {
			a = maxAgeYears
		}
		ageCounts[a] += e.NumFemales
	}

	if _, err := fmt.Fprintf(w, "%-12s %5d ", h.Name, year); err != nil {
		return err
	}
	for _, n := range ageCounts {
		if _, err := fmt.Fprintf(w, "%5d", n); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
