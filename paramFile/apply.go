// paramFile project apply.go
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
	"fmt"
	"sort"

	"github.com/blgolden/flockDemog/genotype"
)

// apply copies one set's values into p
func apply(p *genotype.Params, values map[string]interface{}) error {
	vectors := p.Coefficients()
	scalars := p.Scalars()

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := values[k]
		switch k {
		case "name", "sets":
		case "animal":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("animal: want a string, got %v", v)
			}
			a, err := genotype.ParseAnimalType(s)
			if err != nil {
				return err
			}
			p.Animal = a
		case "dairy":
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("dairy: want true or false, got %v", v)
			}
			p.Dairy = b
		case "editor", "editDate":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%s: want a string, got %v", k, v)
			}
			if k == "editor" {
				p.Editor = s
			} else {
				p.EditDate = s
			}
		case "ovulationPeriod", "pubertyFemale", "pubertyMale":
			f, err := number(k, v)
			if err != nil {
				return err
			}
			switch k {
			case "ovulationPeriod":
				p.OvulationPeriod = int(f)
			case "pubertyFemale":
				p.Puberty.Female = int(f)
			default:
				p.Puberty.Male = int(f)
			}
		case "conceiveMidpoint", "conceiveCurvature":
			var vals [3]float64
			for i, s := range p.ConceiveSigs {
				if k == "conceiveMidpoint" {
					vals[i] = s.Midpoint
				} else {
					vals[i] = s.Curvature
				}
			}
			if err := setVector(k, vals[:], v); err != nil {
				return err
			}
			for i := range p.ConceiveSigs {
				if k == "conceiveMidpoint" {
					p.ConceiveSigs[i].Midpoint = vals[i]
				} else {
					p.ConceiveSigs[i].Curvature = vals[i]
				}
			}
		case "ancestry":
			anc, err := ancestry(v)
			if err != nil {
				return err
			}
			if err := p.SetAncestry(anc); err != nil {
				return err
			}
		default:
			if dst, ok := vectors[k]; ok {
				if err := setVector(k, dst, v); err != nil {
					return err
				}
				continue
			}
			if dst, ok := scalars[k]; ok {
				f, err := number(k, v)
				if err != nil {
					return err
				}
				*dst = f
				continue
			}
			return fmt.Errorf("unknown parameter %q", k)
		}
	}
	return nil
}

func number(k string, v interface{}) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: want a number, got %v", k, v)
	}
	return f, nil
}

// setVector overwrites the leading values of dst
func setVector(k string, dst []float64, v interface{}) error {
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("%s: want a list of numbers", k)
	}
	if len(list) > len(dst) {
		return fmt.Errorf("%s: %d values given, at most %d allowed", k, len(list), len(dst))
	}
	for i, e := range list {
		f, err := number(fmt.Sprintf("%s[%d]", k, i), e)
		if err != nil {
			return err
		}
		dst[i] = f
	}
	return nil
}

// ancestry reads rows of "breed, proportion"
func ancestry(v interface{}) ([]genotype.Ancestry, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("ancestry: want a list of \"breed, proportion\" rows")
	}
	var anc []genotype.Ancestry
	for _, row := range list {
		s, ok := row.(string)
		if !ok {
			return nil, fmt.Errorf("ancestry: row %v is not a string", row)
		}
		fields, err := SplitRow(s, 2)
		if err != nil {
			return nil, fmt.Errorf("ancestry: %w", err)
		}
		propn, err := ParseFloat(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ancestry: %w", err)
		}
		anc = append(anc, genotype.Ancestry{BaseBreed: fields[0], Proportion: propn})
	}
	return anc, nil
}
