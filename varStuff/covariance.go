// varStuff project covariance.go
// Covariances of replicate summaries
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
package varStuff

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Covariance of the columns of samples, one row per replicate
func Covariance(samples [][]float64) (*mat.SymDense, error) {
	if len(samples) < 2 {
		return nil, errors.New("need at least two replicates for a covariance")
	}
	cols := len(samples[0])
	data := make([]float64, 0, len(samples)*cols)
	for i, row := range samples {
		if len(row) != cols {
			return nil, fmt.Errorf("replicate %d has %d values, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, mat.NewDense(len(samples), cols, data), nil)
	return &cov, nil
}

// Correlation scales a covariance matrix to unit diagonal. A variable with
// no variance correlates zero with everything, itself included.
func Correlation(cov mat.Symmetric) *mat.SymDense {
	n := cov.Symmetric()
	sd := make([]float64, n)
	for i := range sd {
		sd[i] = math.Sqrt(cov.At(i, i))
	}

	cor := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if sd[i] > 0 && sd[j] > 0 {
				cor.SetSym(i, j, cov.At(i, j)/(sd[i]*sd[j]))
			}
		}
	}
	return cor
}

// Factor returns the Cholesky factor of a positive definite covariance
func Factor(cov mat.Symmetric) (v mat.Cholesky, ok bool) {
	ok = v.Factorize(cov)
	return v, ok
}

// Pretty matrix format printout
func MatPrint(w io.Writer, X mat.Matrix) {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	fmt.Fprintf(w, "%.4v\n", fa)
}
