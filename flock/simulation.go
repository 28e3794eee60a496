// flock project simulation.go
// Builds the herds of a run and steps them through the years
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
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/blgolden/flockDemog/genotype"
)

type Simulation struct {
	Config *Config
	Herds  []*Herd
	Year   int // Years completed

	rng     *Rng
	ageFile io.Writer
}

// NewSimulation prepares the genotypes named in c and makes the
// foundation herds. Inits for a genotype are applied before any cross
// that uses it. A cross gets its own inits once made.
func NewSimulation(c *Config, catalog *genotype.Catalog, seed int64) (*Simulation, error) {
	s := &Simulation{Config: c, rng: NewRng(seed)}

	names := make([]string, 0, len(c.Inits))
	for name := range c.Inits {
		names = append(names, name)
	}
	sort.Strings(names)

	// Names not found yet may belong to crosses
	pending := map[string]bool{}
	prepared := map[string]*genotype.Params{}
	for _, name := range names {
		if isCross(c.Crosses, name) {
			pending[strings.ToLower(name)] = true
			continue
		}
		p, err := initialise(catalog, name, c.Inits[name])
		if errors.Is(err, genotype.ErrNotFound) {
			pending[strings.ToLower(name)] = true
			continue
		}
		if err != nil {
			return nil, err
		}
		prepared[strings.ToLower(name)] = p
	}

	for _, x := range c.Crosses {
		made, err := catalog.Cross(x.Name, x.Dam, x.Sire, x.DamPropn, x.SirePropn)
		if err != nil {
			return nil, fmt.Errorf("crossing %s with %s: %w", x.Dam, x.Sire, err)
		}
		if !pending[strings.ToLower(made.Name)] {
			continue
		}
		p, err := initialise(catalog, made.Name, lookupInits(c.Inits, made.Name))
		if err != nil {
			return nil, err
		}
		prepared[strings.ToLower(made.Name)] = p
		delete(pending, strings.ToLower(made.Name))
	}
	for _, name := range names {
		if pending[strings.ToLower(name)] {
			return nil, fmt.Errorf("inits: %w: genotype %q", genotype.ErrNotFound, name)
		}
	}

	// Initialised genotypes are used as they are, since a catalog lookup
	// would derive them again
	for _, spec := range c.Herds {
		p, ok := prepared[strings.ToLower(strings.TrimSpace(spec.Genotype))]
		if ok {
			p = p.Copy()
		} else {
			var err error
			if p, err = catalog.Get(spec.Genotype); err != nil {
				return nil, fmt.Errorf("herd %s: %w", spec.Name, err)
			}
		}
		s.Herds = append(s.Herds, MakeFoundationHerd(spec, p, c.AgeDist, s.rng))
	}
	return s, nil
}

func isCross(crosses []CrossSpec_t, name string) bool {
	for _, x := range crosses {
		if strings.EqualFold(x.Name, name) {
			return true
		}
	}
	return false
}

func lookupInits(all map[string]genotype.Inits, name string) genotype.Inits {
	for k, in := range all {
		if strings.EqualFold(k, name) {
			return in
		}
	}
	return genotype.Inits{}
}

func initialise(catalog *genotype.Catalog, name string, in genotype.Inits) (*genotype.Params, error) {
	p, err := catalog.Get(name)
	if err != nil {
		return nil, fmt.Errorf("inits: %w", err)
	}
	if err := p.InitialiseWithParams(in); err != nil {
		return nil, err
	}
	catalog.Add(p)
	return p, nil
}

// SetAgeFile makes each year write the herds' age distributions to w
func (s *Simulation) SetAgeFile(w io.Writer) { s.ageFile = w }

// Step simulates one more year for every herd
func (s *Simulation) Step() ([]YearRecord_t, error) {
	year := s.Year + 1
	records := make([]YearRecord_t, 0, len(s.Herds))
	for _, h := range s.Herds {
		r, err := h.SimulateYear(year, s.Config, s.rng)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
		if s.ageFile != nil {
			if err := WriteAgeDistribution(s.ageFile, h, year, s.Config.MaxAgeYears); err != nil {
				return nil, err
			}
		}
	}
	s.Year = year
	return records, nil
}

// Run simulates the remaining years, stopping early if ctx is done
func (s *Simulation) Run(ctx context.Context) error {
	for s.Year < s.Config.Years() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Records returns every herd's records after the burnin, herd by herd
func (s *Simulation) Records() []YearRecord_t {
	var out []YearRecord_t
	for _, h := range s.Herds {
		for _, r := range h.Records {
			if r.Year > s.Config.Burnin {
				out = append(out, r)
			}
		}
	}
	return out
}
