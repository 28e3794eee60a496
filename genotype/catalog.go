// genotype project catalog.go
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
package genotype

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Source is a library of standard genotypes the catalog falls back on
type Source interface {
	Resolve(name string) (*Params, error) // Must wrap ErrNotFound for unknown names
	Names() []string
}

type entry struct {
	name    string
	params  *Params
	resolve func() (*Params, error) // Used once, on the first Get
}

// Catalog maps breed names, ignoring case, to genotypes. Entries added to
// the catalog are searched before the sources. Safe for concurrent use.
type Catalog struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string // Keys in the order first added
	sources []Source
}

func NewCatalog(sources ...Source) *Catalog {
	return &Catalog{entries: make(map[string]*entry), sources: sources}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *Catalog) put(e *entry) {
	k := key(e.name)
	if _, ok := c.entries[k]; !ok {
		c.order = append(c.order, k)
	}
	c.entries[k] = e
}

// Add stores a copy of p, replacing any genotype of the same name
func (c *Catalog) Add(p *Params) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(&entry{name: p.Name, params: p.Copy()})
}

// AddLazy registers name to be built by resolve when first asked for
func (c *Catalog) AddLazy(name string, resolve func() (*Params, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(&entry{name: name, resolve: resolve})
}

// Get returns an independent, derived copy of the named genotype. An empty
// name gives the first genotype added.
func (c *Catalog) Get(name string) (*Params, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(name)
	if k == "" && len(c.order) > 0 {
		k = c.order[0]
	}

	if e, ok := c.entries[k]; ok {
		if e.params == nil {
			p, err := e.resolve()
			if err != nil {
				return nil, fmt.Errorf("resolving genotype %q: %w", e.name, err)
			}
			e.params, e.resolve = p.Copy(), nil
		}
		return derived(e.params), nil
	}

	for _, s := range c.sources {
		p, err := s.Resolve(name)
		if err == nil {
			return derived(p), nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: genotype %q", ErrNotFound, name)
}

func derived(p *Params) *Params {
	d := p.Copy()
	d.DeriveParams()
	return d
}

// Names lists every genotype the catalog can return, sorted and without
// repeats. The spelling of the first source to mention a name wins.
func (c *Catalog) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]bool{}
	var names []string
	add := func(n string) {
		if !seen[key(n)] {
			seen[key(n)] = true
			names = append(names, n)
		}
	}
	for _, k := range c.order {
		add(c.entries[k].name)
	}
	for _, s := range c.sources {
		for _, n := range s.Names() {
			add(n)
		}
	}
	sort.Slice(names, func(i, j int) bool { return strings.ToLower(names[i]) < strings.ToLower(names[j]) })
	return names
}

// Cross looks up both parents, blends them and adds the result under its
// name, which is synthesized when empty
func (c *Catalog) Cross(name, damName, sireName string, damPropn, sirePropn float64) (*Params, error) {
	dam, err := c.Get(damName)
	if err != nil {
		return nil, err
	}
	sire, err := c.Get(sireName)
	if err != nil {
		return nil, err
	}
	x := CrossBreed(name, dam, sire, damPropn, sirePropn)
	x.DeriveParams()
	c.Add(x)
	return x.Copy(), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
