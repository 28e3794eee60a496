// varStuff project covariance_test.go
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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCovariance(t *testing.T) {
	samples := [][]float64{
		{1, 2, 5},
		{2, 4, 5},
		{3, 6, 5},
	}
	cov, err := Covariance(samples)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 4.0, cov.At(1, 1), 1e-12)
	assert.InDelta(t, 2.0, cov.At(0, 1), 1e-12)
	assert.Zero(t, cov.At(2, 2))

	cor := Correlation(cov)
	assert.InDelta(t, 1.0, cor.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, cor.At(1, 1), 1e-12)
	assert.Zero(t, cor.At(0, 2))
	assert.Zero(t, cor.At(2, 2))

	// Singular, so there is no Cholesky factor
	_, ok := Factor(cov)
	assert.False(t, ok)
}

func TestCovarianceErrors(t *testing.T) {
	_, err := Covariance([][]float64{{1, 2}})
	assert.Error(t, err)
	_, err = Covariance([][]float64{{1, 2}, {1}})
	assert.Error(t, err)
}

func TestFactor(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{4, 2, 2, 3})
	c, ok := Factor(cov)
	require.True(t, ok)

	var l mat.TriDense
	c.LTo(&l)
	assert.InDelta(t, 2.0, l.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, l.At(1, 0), 1e-12)
	assert.InDelta(t, 1.4142135623730951, l.At(1, 1), 1e-12)
}

func TestMatPrint(t *testing.T) {
	var buf bytes.Buffer
	MatPrint(&buf, mat.NewSymDense(2, []float64{1, 0.5, 0.5, 1}))
	assert.Contains(t, buf.String(), "0.5")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
