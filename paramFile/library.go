// paramFile project library.go
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
// Package paramFile reads genotype libraries written in hjson. Each
// genotype may hold child sets that override some of its values:
//
//	{
//	  genotypes: [
//	    {
//	      name: Merino
//	      animal: sheep
//	      srw: 50
//	      growthC: [0.0157, 0.27, 0.4, 1.0]
//	      sets: [
//	        { name: "Fine Merino", srw: 45 }
//	      ]
//	    }
//	  ]
//	}
//
// Arrays shorter than their coefficient group set its leading values.
package paramFile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blgolden/flockDemog/genotype"

	hjson "github.com/hjson/hjson-go"
)

type set_t struct {
	name   string
	parent *set_t
	values map[string]interface{}
}

// Library is a parsed genotype file. It satisfies genotype.Source.
type Library struct {
	sets  map[string]*set_t
	names []string // In file order
}

// Load reads and parses the genotype file at path
func Load(path string) (*Library, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lib, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

func Parse(b []byte) (*Library, error) {
	var doc map[string]interface{}
	if err := hjson.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	list, ok := doc["genotypes"].([]interface{})
	if !ok {
		return nil, errors.New("'genotypes:' key not found")
	}

	lib := &Library{sets: make(map[string]*set_t)}
	for _, g := range list {
		if err := lib.add(g, nil); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func (lib *Library) add(v interface{}, parent *set_t) error {
	m, ok := v.(map[string]interface{})
	if !ok {
		return errors.New("genotype sets must be objects")
	}
	name, _ := m["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("genotype set without a name")
	}
	k := strings.ToLower(name)
	if _, dup := lib.sets[k]; dup {
		return fmt.Errorf("genotype %q defined twice", name)
	}

	s := &set_t{name: name, parent: parent, values: m}
	lib.sets[k] = s
	lib.names = append(lib.names, name)

	if children, ok := m["sets"]; ok {
		list, ok := children.([]interface{})
		if !ok {
			return fmt.Errorf("%s: 'sets:' must be a list", name)
		}
		for _, c := range list {
			if err := lib.add(c, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (lib *Library) Names() []string {
	return append([]string(nil), lib.names...)
}

// Resolve builds the named genotype by applying its sets from the most
// general to the most specific
func (lib *Library) Resolve(name string) (*genotype.Params, error) {
	s, ok := lib.sets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not in the genotype file", genotype.ErrNotFound, name)
	}

	var chain []*set_t
	for c := s; c != nil; c = c.parent {
		chain = append(chain, c)
	}

	p := &genotype.Params{Name: s.name}
	for i := len(chain) - 1; i >= 0; i-- {
		if err := apply(p, chain[i].values); err != nil {
			return nil, fmt.Errorf("genotype %s: %w", chain[i].name, err)
		}
	}
	p.Name = s.name
	fleeceWt := p.PotFleeceWt // A stated fleece weight wins over fleeceRatio
	p.DeriveParams()
	if fleeceWt > 0.0 {
		p.PotFleeceWt = fleeceWt
	}
	p.Initialise()
	return p, nil
}
