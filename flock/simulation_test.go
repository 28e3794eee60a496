// flock project simulation_test.go
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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/blgolden/flockDemog/genotype"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationRun(t *testing.T) {
	c := parseMaster(t, testMaster)
	s, err := NewSimulation(c, testCatalog(), 42)
	require.NoError(t, err)
	require.Len(t, s.Herds, 2)
	assert.Equal(t, genotype.Cattle, s.Herds[1].Genotype.Animal)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 5, s.Year)
	for _, h := range s.Herds {
		assert.Len(t, h.Records, 5)
	}

	records := s.Records()
	require.Len(t, records, 6) // 3 years after the burnin for each herd
	for _, r := range records {
		assert.Greater(t, r.Year, 2)
	}
}

func TestSimulationSeedRepeats(t *testing.T) {
	run := func(seed int64) []YearRecord_t {
		s, err := NewSimulation(parseMaster(t, testMaster), testCatalog(), seed)
		require.NoError(t, err)
		require.NoError(t, s.Run(context.Background()))
		return s.Records()
	}

	if diff := cmp.Diff(run(9), run(9)); diff != "" {
		t.Errorf("same seed gave different records (-first +second):\n%s", diff)
	}
}

func TestSimulationCancelled(t *testing.T) {
	s, err := NewSimulation(parseMaster(t, testMaster), testCatalog(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, s.Year)
}

func TestSimulationCrossesAndInits(t *testing.T) {
	c := parseMaster(t, `{
  planningHorizon: 1
  ageDist: [0.5, 0.5]
  herds: [
    "Pure, Merino, 100, 5"
    "Named, First Cross, 100, 5"
  ]
  crosses: [
    "-, Merino, Border Leicester, 0.5, 0.5"
    "First Cross, Merino, Border Leicester, 0.75, 0.25"
  ]
  inits: {
    Merino: {srw: 55}
    "Merino 50%, Border Leicester 50%": {conceptions: [0.5, 0.2, 0]}
    "First Cross": {matureDeathRate: 0.05}
  }
}`)
	catalog := testCatalog()
	s, err := NewSimulation(c, catalog, 3)
	require.NoError(t, err)

	assert.Equal(t, 55.0, s.Herds[0].Genotype.BreedSRW)

	halfBred, err := catalog.Get("merino 50%, border leicester 50%")
	require.NoError(t, err)
	rates, err := halfBred.Conceptions()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rates[0], 1e-3)
	assert.InDelta(t, 0.2, rates[1], 1e-3)

	named := s.Herds[1].Genotype
	assert.Equal(t, "First Cross", named.Name)
	assert.Equal(t, 2, named.ParentageCount())
	deaths, err := named.AnnualDeaths(genotype.Mature)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, deaths, 1e-9)

	// The cross was made from the initialised Merino
	assert.InDelta(t, 0.75*55+0.25*50, named.BreedSRW, 1e-9)
}

func TestSimulationUnknownGenotype(t *testing.T) {
	for _, master := range []string{
		`{planningHorizon: 1, ageDist: [1], herds: ["a, Corriedale, 1, 1"]}`,
		`{planningHorizon: 1, ageDist: [1], herds: ["a, Merino, 1, 1"], inits: {Corriedale: {srw: 50}}}`,
		`{planningHorizon: 1, ageDist: [1], herds: ["a, Merino, 1, 1"], crosses: ["-, Merino, Corriedale, 0.5, 0.5"]}`,
	} {
		_, err := NewSimulation(parseMaster(t, master), testCatalog(), 1)
		assert.True(t, errors.Is(err, genotype.ErrNotFound), "%s: %v", master, err)
	}
}

func TestAgeFile(t *testing.T) {
	c := parseMaster(t, testMaster)
	s, err := NewSimulation(c, testCatalog(), 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	s.SetAgeFile(&buf)
	require.NoError(t, s.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	fields := strings.Fields(lines[0])
	assert.Equal(t, "Wethers", fields[0])
	assert.Equal(t, "1", fields[1])
	assert.Len(t, fields, 2+c.MaxAgeYears+1)
	assert.Equal(t, "0", fields[2]) // Nothing is under a year old after ageing
}

func TestWriteAgeDistributionOldest(t *testing.T) {
	h, _, _ := testHerd(t, 0, 0)
	h.Ages.Input(365, 0, 2)
	h.Ages.Input(9*365, 1, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteAgeDistribution(&buf, h, 7, 4))
	assert.Equal(t, "Ewes             7     0    2    0    0    3\n", buf.String())
}
