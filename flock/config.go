// flock project config.go
// Simulation settings read from the master hjson file
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
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/blgolden/flockDemog/genotype"
	"github.com/blgolden/flockDemog/paramFile"

	"gonum.org/v1/gonum/floats"
)

const daysPerYear = 365

type HerdSpec_t struct {
	Name     string
	Genotype string
	Females  int // Target numbers held after each year's purchases and sales
	Males    int
}

type CrossSpec_t struct {
	Name      string // "-" names the cross from its ancestry
	Dam       string
	Sire      string
	DamPropn  float64
	SirePropn float64
}

// Config is everything the master file says about one run
type Config struct {
	Comment         string
	Burnin          int // Years simulated before records count towards the summary
	PlanningHorizon int
	AgeDist         []float64 // Proportion of the foundation herd aged 1, 2, ... years

	Herds   []HerdSpec_t
	Crosses []CrossSpec_t
	Inits   map[string]genotype.Inits // By genotype name

	MaxAgeYears        int // Animals are culled in the year they would reach this age
	WeanerAgeDays      int // Below this age the weaner death rate applies
	ReplacementAgeDays int // Age of purchased animals
	JoiningDays        int // Length of the mating period, 0 if not reported

	AgeFile string
}

// Years is the total number of years to simulate
func (c *Config) Years() int { return c.Burnin + c.PlanningHorizon }

// ParseConfig reads the keys of a master file decoded by hjson
func ParseConfig(param map[string]interface{}) (*Config, error) {
	c := &Config{
		WeanerAgeDays:      daysPerYear,
		ReplacementAgeDays: daysPerYear,
		Inits:              map[string]genotype.Inits{},
	}
	var err error

	if s, ok := param["Comment"].(string); ok {
		c.Comment = s
	}

	if c.Burnin, err = intKey(param, "burnin", 0); err != nil {
		return nil, err
	}
	if c.PlanningHorizon, err = intKey(param, "planningHorizon", -1); err != nil {
		return nil, err
	}
	if c.PlanningHorizon < 0 {
		return nil, errors.New("'planningHorizon:' key not found")
	}
	if c.Burnin < 0 || c.Years() < 1 {
		return nil, fmt.Errorf("burnin %d and planningHorizon %d give no years to simulate", c.Burnin, c.PlanningHorizon)
	}

	if c.AgeDist, err = ageDist(param["ageDist"]); err != nil {
		return nil, err
	}

	if c.MaxAgeYears, err = intKey(param, "maxAgeYears", len(c.AgeDist)+1); err != nil {
		return nil, err
	}
	if c.MaxAgeYears < 2 {
		return nil, fmt.Errorf("maxAgeYears %d must be at least 2", c.MaxAgeYears)
	}
	if c.WeanerAgeDays, err = intKey(param, "weanerAgeDays", c.WeanerAgeDays); err != nil {
		return nil, err
	}
	if c.ReplacementAgeDays, err = intKey(param, "replacementAgeDays", c.ReplacementAgeDays); err != nil {
		return nil, err
	}
	if c.JoiningDays, err = intKey(param, "joiningDays", 0); err != nil {
		return nil, err
	}
	if c.WeanerAgeDays < 0 || c.ReplacementAgeDays < 0 || c.JoiningDays < 0 {
		return nil, errors.New("weanerAgeDays, replacementAgeDays and joiningDays must not be negative")
	}

	if c.Herds, err = herds(param["herds"]); err != nil {
		return nil, err
	}
	if c.Crosses, err = crosses(param["crosses"]); err != nil {
		return nil, err
	}
	if v, ok := param["inits"]; ok {
		if c.Inits, err = inits(v); err != nil {
			return nil, err
		}
	}

	if s, ok := param["agefilename"].(string); ok {
		c.AgeFile = s
	}
	return c, nil
}

func intKey(param map[string]interface{}, k string, def int) (int, error) {
	v, ok := param[k]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("'%s:' must be a whole number, got %v", k, v)
	}
	return int(f), nil
}

// ageDist accepts numbers or numeric strings
func ageDist(v interface{}) ([]float64, error) {
	array, ok := v.([]interface{})
	if !ok || len(array) == 0 {
		return nil, errors.New("'ageDist:' key not found")
	}
	dist := make([]float64, len(array))
	for i, a := range array {
		var err error
		switch x := a.(type) {
		case float64:
			dist[i] = x
		case string:
			if dist[i], err = paramFile.ParseFloat(x); err != nil {
				return nil, fmt.Errorf("ageDist[%d]: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("ageDist[%d]: unexpected value %v", i, a)
		}
		if dist[i] < 0 {
			return nil, fmt.Errorf("ageDist[%d]: negative proportion %g", i, dist[i])
		}
	}
	if tot := floats.Sum(dist); tot > 1.001 || tot < .999 {
		return nil, fmt.Errorf("herd age proportions add to %g, not 1.0", tot)
	}
	return dist, nil
}

func rows(v interface{}, key string) ([]string, error) {
	array, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("'%s:' must be a list of rows", key)
	}
	out := make([]string, len(array))
	for i, a := range array {
		if out[i], ok = a.(string); !ok {
			return nil, fmt.Errorf("%s[%d]: rows are comma separated strings", key, i)
		}
	}
	return out, nil
}

// herds reads rows of "name, genotype, females, males"
func herds(v interface{}) ([]HerdSpec_t, error) {
	if v == nil {
		return nil, errors.New("'herds:' key not found")
	}
	array, err := rows(v, "herds")
	if err != nil {
		return nil, err
	}
	if len(array) == 0 {
		return nil, errors.New("'herds:' has no rows")
	}
	seen := map[string]bool{}
	list := make([]HerdSpec_t, 0, len(array))
	for _, row := range array {
		s, err := paramFile.SplitRow(row, 4)
		if err != nil {
			return nil, fmt.Errorf("herds: %w", err)
		}
		h := HerdSpec_t{Name: s[0], Genotype: s[1]}
		if h.Females, err = paramFile.ParseInt(s[2]); err != nil {
			return nil, fmt.Errorf("herds: %q: %w", row, err)
		}
		if h.Males, err = paramFile.ParseInt(s[3]); err != nil {
			return nil, fmt.Errorf("herds: %q: %w", row, err)
		}
		if h.Females < 0 || h.Males < 0 {
			return nil, fmt.Errorf("herds: %q: negative target", row)
		}
		if seen[h.Name] {
			return nil, fmt.Errorf("herds: duplicate herd %q", h.Name)
		}
		seen[h.Name] = true
		list = append(list, h)
	}
	return list, nil
}

// crosses reads rows of "name, dam, sire, damPropn, sirePropn"
func crosses(v interface{}) ([]CrossSpec_t, error) {
	if v == nil {
		return nil, nil
	}
	array, err := rows(v, "crosses")
	if err != nil {
		return nil, err
	}
	list := make([]CrossSpec_t, 0, len(array))
	for _, row := range array {
		s, err := paramFile.SplitRow(row, 5)
		if err != nil {
			return nil, fmt.Errorf("crosses: %w", err)
		}
		x := CrossSpec_t{Name: s[0], Dam: s[1], Sire: s[2]}
		if x.DamPropn, err = paramFile.ParseFloat(s[3]); err != nil {
			return nil, fmt.Errorf("crosses: %q: %w", row, err)
		}
		if x.SirePropn, err = paramFile.ParseFloat(s[4]); err != nil {
			return nil, fmt.Errorf("crosses: %q: %w", row, err)
		}
		if err := genotype.CheckProportions(x.DamPropn, x.SirePropn); err != nil {
			return nil, fmt.Errorf("crosses: %q: %w", row, err)
		}
		if x.Name == "-" {
			x.Name = ""
		}
		list = append(list, x)
	}
	return list, nil
}

// inits reads a map of genotype name to its overrides
func inits(v interface{}) (map[string]genotype.Inits, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.New("'inits:' must map genotype names to values")
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]genotype.Inits, len(m))
	for _, name := range names {
		values, ok := m[name].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("inits: %s: expected a map of values", name)
		}
		in, err := initsFor(values)
		if err != nil {
			return nil, fmt.Errorf("inits: %s: %w", name, err)
		}
		out[name] = in
	}
	return out, nil
}

func initsFor(values map[string]interface{}) (genotype.Inits, error) {
	var in genotype.Inits
	scalars := map[string]**float64{
		"srw":             &in.SRW,
		"potFleeceWt":     &in.PotFleeceWt,
		"maxMicrons":      &in.MaxMicrons,
		"fleeceYield":     &in.FleeceYield,
		"potMilkYield":    &in.PotMilkYield,
		"matureDeathRate": &in.MatureDeathRate,
		"weanerDeathRate": &in.WeanerDeathRate,
	}
	for k, v := range values {
		if k == "conceptions" {
			array, ok := v.([]interface{})
			if !ok || len(array) == 0 || len(array) > 3 {
				return in, fmt.Errorf("conceptions: want 1 to 3 rates, got %v", v)
			}
			var rates [3]float64
			for i, a := range array {
				f, ok := a.(float64)
				if !ok {
					return in, fmt.Errorf("conceptions[%d]: %v is not a number", i, a)
				}
				rates[i] = f
			}
			in.Conceptions = &rates
			continue
		}
		dst, ok := scalars[k]
		if !ok {
			return in, fmt.Errorf("unknown key %q", k)
		}
		f, ok := v.(float64)
		if !ok {
			return in, fmt.Errorf("%s: %v is not a number", k, v)
		}
		*dst = &f
	}
	return in, nil
}
