// paramFile project library_test.go
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
package paramFile

import (
	"path/filepath"
	"testing"

	"github.com/blgolden/flockDemog/genotype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Load(filepath.Join("testdata", "genotypes.hjson"))
	require.NoError(t, err)
	return lib
}

func TestLoadNames(t *testing.T) {
	lib := loadTestLibrary(t)
	assert.Equal(t, []string{
		"Merino", "Fine Merino", "Superfine Merino",
		"Angus", "Red Angus", "Hereford", "Friesian",
	}, lib.Names())
}

func TestResolveRoot(t *testing.T) {
	lib := loadTestLibrary(t)
	p, err := lib.Resolve("merino")
	require.NoError(t, err)

	assert.Equal(t, "Merino", p.Name)
	assert.Equal(t, genotype.Sheep, p.Animal)
	assert.Equal(t, "flockDemog", p.Editor)
	assert.Equal(t, 50.0, p.BreedSRW)
	assert.Equal(t, [3]float64{0.081, 0.068, 0.058}, p.BirthWtScale)
	assert.Equal(t, 0.045, p.IntakeC[10])
	assert.Equal(t, 0.0, p.IntakeC[11])
	assert.Equal(t, genotype.Sigmoid{Midpoint: 1.2, Curvature: 0.5}, p.ConceiveSigs[1])
	assert.Equal(t, 17, p.OvulationPeriod)
	assert.Equal(t, genotype.Puberty_t{Female: 300, Male: 240}, p.Puberty)
	assert.Equal(t, []genotype.Ancestry{{BaseBreed: "Merino", Proportion: 1}}, p.Ancestry())
}

func TestResolveChildInherits(t *testing.T) {
	lib := loadTestLibrary(t)
	p, err := lib.Resolve("Fine Merino")
	require.NoError(t, err)

	assert.Equal(t, "Fine Merino", p.Name)
	assert.Equal(t, 45.0, p.BreedSRW)
	assert.Equal(t, 18.0, p.MaxFleeceDiam)
	assert.Equal(t, genotype.Sheep, p.Animal)
	assert.Equal(t, 147.0, p.PregC[0])
	assert.Equal(t, "Fine Merino", p.ParentageBreed(0))

	super, err := lib.Resolve("Superfine Merino")
	require.NoError(t, err)
	assert.Equal(t, 50.0, super.BreedSRW)
	assert.Equal(t, 16.0, super.MaxFleeceDiam)
}

func TestResolveUnknown(t *testing.T) {
	lib := loadTestLibrary(t)
	_, err := lib.Resolve("Dorper")
	assert.ErrorIs(t, err, genotype.ErrNotFound)
}

func TestCatalogUsesLibrary(t *testing.T) {
	c := genotype.NewCatalog(loadTestLibrary(t))

	p, err := c.Get("red angus")
	require.NoError(t, err)
	assert.Equal(t, 560.0, p.BreedSRW)
	assert.Equal(t, 2, p.MaxYoung)
	assert.InDelta(t, 0.05*560, p.PeakMilk, 1e-9)
	assert.Contains(t, c.Names(), "Friesian")
}

func TestResolveFleeceWeightOrRatio(t *testing.T) {
	lib, err := Parse([]byte(`{ genotypes: [
		{ name: "ByWeight", animal: "sheep", srw: 50, potFleeceWt: 4.5, birthWtScale: [0.08] }
		{ name: "ByRatio", animal: "sheep", srw: 50, fleeceRatio: 0.08, birthWtScale: [0.08] }
	] }`))
	require.NoError(t, err)

	p, err := lib.Resolve("ByWeight")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, p.PotFleeceWt, 1e-9)
	assert.InDelta(t, 0.09, p.FleeceRatio, 1e-12)

	p, err = lib.Resolve("ByRatio")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, p.PotFleeceWt, 1e-9)
	assert.InDelta(t, 0.08, p.FleeceRatio, 1e-12)

	// Re-deriving in the catalog keeps the weight
	c := genotype.NewCatalog(lib)
	p, err = c.Get("byweight")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, p.PotFleeceWt, 1e-9)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"no genotypes":  `{ breeds: [] }`,
		"no name":       `{ genotypes: [ { srw: 50 } ] }`,
		"duplicate":     "{ genotypes: [ { name: \"A\" }, { name: \"a\" } ] }",
		"sets not list": "{ genotypes: [ { name: \"A\", sets: 3 } ] }",
		"bad hjson":     `{ genotypes: [`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestResolveValueErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "{ genotypes: [ { name: \"A\", wingspan: 3 } ] }",
		"long array":    "{ genotypes: [ { name: \"A\", growthC: [1, 2, 3, 4, 5] } ] }",
		"bad animal":    "{ genotypes: [ { name: \"A\", animal: \"goat\" } ] }",
		"string number": "{ genotypes: [ { name: \"A\", srw: \"big\" } ] }",
		"bad ancestry":  "{ genotypes: [ { name: \"A\", ancestry: [\"B\"] } ] }",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			lib, err := Parse([]byte(doc))
			require.NoError(t, err)
			_, err = lib.Resolve("A")
			assert.Error(t, err)
		})
	}
}

func TestAncestryRows(t *testing.T) {
	lib, err := Parse([]byte("{ genotypes: [ { name: \"Composite\", ancestry: [\"Angus, 0.5\", \"Hereford, 0.5\"] } ] }"))
	require.NoError(t, err)

	p, err := lib.Resolve("Composite")
	require.NoError(t, err)
	assert.Equal(t, []genotype.Ancestry{{BaseBreed: "Angus", Proportion: 0.5}, {BaseBreed: "Hereford", Proportion: 0.5}}, p.Ancestry())
}

func TestSplitRow(t *testing.T) {
	f, err := SplitRow(" Spring , Angus, 500 ", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Spring", "Angus", "500"}, f)

	_, err = SplitRow("a, b", 3)
	assert.Error(t, err)
}
