// flock project flock_test.go
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

	"github.com/blgolden/flockDemog/genotype"
	hjson "github.com/hjson/hjson-go"
	"github.com/stretchr/testify/require"
)

func testEwes(name string) *genotype.Params {
	p := &genotype.Params{
		Name:         name,
		Animal:       genotype.Sheep,
		BreedSRW:     50,
		FleeceRatio:  0.09,
		SRWScalars:   [2]float64{0.7, 1.4},
		BirthWtScale: [3]float64{0.081, 0.068, 0.058},
		ConceiveSigs: [3]genotype.Sigmoid{{Midpoint: 0.8, Curvature: 0.5}, {Midpoint: 1.2, Curvature: 0.5}, {Midpoint: 1.6, Curvature: 0.5}},
		MortRate:     [2]float64{0.00015, 0.0002},
		Puberty:      genotype.Puberty_t{Female: 300, Male: 240},
	}
	p.IntakeC[10] = 0.045
	p.PregC[0] = 147
	p.DeriveParams()
	p.Initialise()
	return p
}

func testCows(name string) *genotype.Params {
	p := &genotype.Params{
		Name:         name,
		Animal:       genotype.Cattle,
		BreedSRW:     550,
		SRWScalars:   [2]float64{0.85, 1.3},
		BirthWtScale: [3]float64{0.07, 0.06, 0},
		ConceiveSigs: [3]genotype.Sigmoid{{Midpoint: 0.6, Curvature: 0.3}, {Midpoint: 1.7, Curvature: 0.3}, {Midpoint: 10, Curvature: 5.89}},
		MortRate:     [2]float64{0.0001, 0.00015},
		Puberty:      genotype.Puberty_t{Female: 420, Male: 350},
	}
	p.IntakeC[9] = 0.6
	p.IntakeC[10] = 0.05
	p.PregC[0] = 281
	p.DeriveParams()
	p.Initialise()
	return p
}

func testCatalog() *genotype.Catalog {
	c := genotype.NewCatalog()
	c.Add(testEwes("Merino"))
	c.Add(testEwes("Border Leicester"))
	c.Add(testCows("Angus"))
	return c
}

const testMaster = `{
  Comment: flock tests
  burnin: 2
  planningHorizon: 3
  ageDist: ["0.3", "0.25", "0.2", "0.15", "0.1"]
  herds: [
    "Wethers, Merino, 200, 20"
    "Cows, Angus, 80, 4"
  ]
}`

func parseMaster(t *testing.T, text string) *Config {
	t.Helper()
	var param map[string]interface{}
	require.NoError(t, hjson.Unmarshal([]byte(text), &param))
	c, err := ParseConfig(param)
	require.NoError(t, err)
	return c
}
