// genotype project params.go
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
	"fmt"
	"math"
	"strings"
)

const DaysPerYear = 365.25

type AnimalType int

const (
	Sheep AnimalType = iota
	Cattle
)

var animalNames = []string{"sheep", "cattle"}

func (a AnimalType) String() string {
	if a < 0 || int(a) >= len(animalNames) {
		return fmt.Sprintf("AnimalType(%d)", int(a))
	}
	return animalNames[a]
}

// ParseAnimalType accepts "sheep" or "cattle" in any case
func ParseAnimalType(s string) (AnimalType, error) {
	for i, n := range animalNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return AnimalType(i), nil
		}
	}
	return Sheep, fmt.Errorf("unknown animal type %q", s)
}

type ReproType int // Reproductive state of an animal

const (
	Castrated ReproType = iota
	Male
	Empty
	EarlyPreg
	LatePreg
)

type AgeClass int // Mortality rates and ages are kept for mature animals and weaners

const (
	Mature AgeClass = iota
	Weaner
)

type CondSystem int // Condition scoring systems

const (
	Score1to5 CondSystem = iota
	Score1to8
	Score1to9
)

var baseScore = [3]float64{3.0, 4.0, 4.5}    // Condition score for condition = 1.0
var scoreUnit = [3]float64{0.15, 0.09, 0.08} // Change in condition for unit CS change

// sigScale makes Curvature the distance between the 5% and 95% points
const sigScale = 5.88878 // 2*ln(0.95/0.05)

// Sigmoid is a rising logistic curve with its 50% point at Midpoint.
// Curvature is the width of the rise from 5% to 95%, so larger is flatter.
type Sigmoid struct {
	Midpoint  float64
	Curvature float64
}

// At evaluates the curve at x
func (s Sigmoid) At(x float64) float64 {
	if s.Curvature == 0 {
		if x < s.Midpoint {
			return 0
		}
		return 1
	}
	z := sigScale * (x - s.Midpoint) / s.Curvature
	switch {
	case z < -30:
		return 0
	case z > 30:
		return 1
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

type Ancestry struct {
	BaseBreed  string
	Proportion float64 // 0..1, all of a genotype's proportions sum to 1
}

type Puberty_t struct {
	Female int // Days of age
	Male   int
}

// Params is the set of breed constants for one genotype.
//
// The coefficient groups are 0-based: coefficient k of a group in the
// published parameter tables is at index k-1. Tables by litter size are
// indexed by the number of young minus one.
type Params struct {
	Name     string
	Editor   string
	EditDate string
	Animal   AnimalType
	Dairy    bool
	MaxYoung int // Largest litter with a positive birth weight scale, 1..3

	BreedSRW        float64 // Standard reference weight of a mature female
	PotFleeceWt     float64
	PeakMilk        float64
	DairyIntakePeak float64
	FleeceRatio     float64
	MaxFleeceDiam   float64

	SRWScalars [2]float64 // Indexed by Castrated and Male
	MortRate   [2]float64 // Daily death rate, indexed by AgeClass
	MortAge    [2]float64 // Indexed by AgeClass

	MortIntensity float64
	MortCondConst float64
	MortWtDiff    float64
	FertWtDiff    float64
	SelfWeanPropn float64

	GrowthC        [4]float64
	IntakeC        [21]float64
	IntakeLactC    [4]float64
	GrazeC         [20]float64
	EfficC         [16]float64
	MaintC         [17]float64
	DgProtC        [8]float64
	ProtC          [9]float64
	PregC          [13]float64
	PregScale      [3]float64
	BirthWtScale   [3]float64
	PeakLactC      [3]float64
	LactC          [25]float64
	WoolC          [14]float64
	ChillC         [16]float64
	GainC          [18]float64
	PhosC          [15]float64
	SulfC          [4]float64
	MethC          [7]float64
	AshAlkC        [3]float64
	DayLengthConst [3]float64
	ToxaemiaSigs   [2]float64
	DystokiaSigs   [2]float64
	ExposureConsts [4]float64

	ConceiveSigs [3]Sigmoid // Indexed by litter size minus one

	OvulationPeriod int
	Puberty         Puberty_t

	ancestry []Ancestry
}

// Coefficients returns p's coefficient groups by their parameter file
// names. The slices alias p.
func (p *Params) Coefficients() map[string][]float64 {
	return map[string][]float64{
		"srwScalars":     p.SRWScalars[:],
		"mortRate":       p.MortRate[:],
		"mortAge":        p.MortAge[:],
		"growthC":        p.GrowthC[:],
		"intakeC":        p.IntakeC[:],
		"intakeLactC":    p.IntakeLactC[:],
		"grazeC":         p.GrazeC[:],
		"efficC":         p.EfficC[:],
		"maintC":         p.MaintC[:],
		"dgProtC":        p.DgProtC[:],
		"protC":          p.ProtC[:],
		"pregC":          p.PregC[:],
		"pregScale":      p.PregScale[:],
		"birthWtScale":   p.BirthWtScale[:],
		"peakLactC":      p.PeakLactC[:],
		"lactC":          p.LactC[:],
		"woolC":          p.WoolC[:],
		"chillC":         p.ChillC[:],
		"gainC":          p.GainC[:],
		"phosC":          p.PhosC[:],
		"sulfC":          p.SulfC[:],
		"methC":          p.MethC[:],
		"ashAlkC":        p.AshAlkC[:],
		"dayLengthConst": p.DayLengthConst[:],
		"toxaemiaSigs":   p.ToxaemiaSigs[:],
		"dystokiaSigs":   p.DystokiaSigs[:],
		"exposureConsts": p.ExposureConsts[:],
	}
}

// Scalars returns pointers to the blended scalar constants by their
// parameter file names
func (p *Params) Scalars() map[string]*float64 {
	return map[string]*float64{
		"srw":             &p.BreedSRW,
		"potFleeceWt":     &p.PotFleeceWt,
		"peakMilk":        &p.PeakMilk,
		"dairyIntakePeak": &p.DairyIntakePeak,
		"fleeceRatio":     &p.FleeceRatio,
		"maxFleeceDiam":   &p.MaxFleeceDiam,
		"mortIntensity":   &p.MortIntensity,
		"mortCondConst":   &p.MortCondConst,
		"mortWtDiff":      &p.MortWtDiff,
		"fertWtDiff":      &p.FertWtDiff,
		"selfWeanPropn":   &p.SelfWeanPropn,
	}
}

// Copy returns an independent duplicate of p
func (p *Params) Copy() *Params {
	c := *p
	c.ancestry = append([]Ancestry(nil), p.ancestry...)
	return &c
}

// DeriveParams recomputes the constants that follow from the others
func (p *Params) DeriveParams() {
	p.MaxYoung = 1
	for p.MaxYoung < 3 && p.BirthWtScale[p.MaxYoung] > 0.0 {
		p.MaxYoung++
	}

	p.PotFleeceWt = p.BreedSRW * p.FleeceRatio
	if p.Animal == Cattle {
		p.PeakMilk = p.IntakeC[10] * p.BreedSRW
	}

	if p.GrazeC[19] == 0.0 {
		p.GrazeC[19] = 11.5
	}
}

// Initialise makes the ancestry of an unblended set pure and brings the
// fleece ratio and lactation intake into line with the stored values
func (p *Params) Initialise() {
	if p.Animal == Sheep {
		p.SetPotFleeceWt(p.PotFleeceWt)
	}
	if p.Dairy {
		p.SetPeakMilk(p.PeakMilk)
	}
	if len(p.ancestry) == 0 {
		p.ancestry = []Ancestry{{BaseBreed: p.Name, Proportion: 1.0}}
	}
}

// SetSRW changes the breed standard reference weight and the constants scaled by it
func (p *Params) SetSRW(v float64) {
	p.BreedSRW = v
	p.PotFleeceWt = p.FleeceRatio * v
	p.SetPeakMilk(p.IntakeC[10] * v)
}

func (p *Params) SetPotFleeceWt(v float64) {
	p.PotFleeceWt = v
	p.FleeceRatio = xdiv(v, p.BreedSRW)
}

// SetPeakMilk also rescales the peak lactation intake of dairy breeds
func (p *Params) SetPeakMilk(v float64) {
	p.PeakMilk = v
	if p.Dairy {
		rel := xdiv(v, p.IntakeC[10]*p.BreedSRW)
		p.IntakeLactC[0] = p.DairyIntakePeak * ((1.0 - p.IntakeC[9]) + p.IntakeC[9]*rel)
	}
}

func (p *Params) MaxMicrons() float64 { return p.MaxFleeceDiam }

func (p *Params) FleeceYield() float64 { return p.WoolC[2] }

// AnnualDeaths is the annual death probability of the age class
func (p *Params) AnnualDeaths(class AgeClass) (float64, error) {
	r := p.MortRate[class]
	if 1.0-r < 0 {
		return 0, fmt.Errorf("%w: daily death rate %g of %s is above one", ErrDomain, r, p.Name)
	}
	return 1.0 - math.Pow(1.0-r, DaysPerYear), nil
}

// SetAnnualDeaths stores the daily hazard equivalent to an annual death probability
func (p *Params) SetAnnualDeaths(class AgeClass, annual float64) error {
	d, err := dailyDeathRate(annual)
	if err != nil {
		return err
	}
	p.MortRate[class] = d
	return nil
}

func dailyDeathRate(annual float64) (float64, error) {
	if 1.0-annual < 0 {
		return 0, fmt.Errorf("%w: annual death rate %g is above one", ErrDomain, annual)
	}
	return 1.0 - math.Pow(1.0-annual, 1.0/DaysPerYear), nil
}

// SexStdRefWt is the standard reference weight for the reproductive state
func (p *Params) SexStdRefWt(repro ReproType) float64 {
	if repro == Castrated || repro == Male {
		return p.SRWScalars[repro] * p.BreedSRW
	}
	return p.BreedSRW
}

// StdBirthWt is the birth weight of each young in a litter of numYoung
func (p *Params) StdBirthWt(numYoung int) float64 {
	if numYoung < 1 || numYoung > len(p.BirthWtScale) {
		return 0
	}
	return p.BreedSRW * p.BirthWtScale[numYoung-1]
}

// Gestation length in days
func (p *Params) Gestation() int {
	return int(math.RoundToEven(p.PregC[0]))
}

func CondScoreToCondition(score float64, sys CondSystem) float64 {
	return 1.0 + (score-baseScore[sys])*scoreUnit[sys]
}

func ConditionToCondScore(condition float64, sys CondSystem) float64 {
	return baseScore[sys] + (condition-1.0)/scoreUnit[sys]
}

// DefaultFleece is the greasy fleece weight expected of a sheep of this age
// and sex fleeceDays after shearing
func (p *Params) DefaultFleece(ageDays int, repro ReproType, fleeceDays int) float64 {
	fleeceDays = min(fleeceDays, ageDays)
	if p.Animal != Sheep || fleeceDays <= 0 {
		return 0
	}

	k := p.WoolC[11]
	ageFactor := 1.0 - (1.0-p.WoolC[4])*
		(math.Exp(-k*float64(ageDays-fleeceDays))-math.Exp(-k*float64(ageDays)))/
		(k*float64(fleeceDays))
	return p.FleeceRatio * p.SexStdRefWt(repro) * ageFactor * float64(fleeceDays) / 365.0
}

// DefaultMicron is the fibre diameter matching a fleece weight of gfw
func (p *Params) DefaultMicron(ageDays int, repro ReproType, fleeceDays int, gfw float64) float64 {
	if fleeceDays <= 0 || gfw <= 0 {
		return p.MaxFleeceDiam
	}
	pot := p.DefaultFleece(ageDays, repro, fleeceDays)
	if pot <= 0 {
		return p.MaxFleeceDiam
	}
	return p.MaxFleeceDiam * math.Pow(gfw/pot, p.WoolC[12])
}

// xdiv is x/y, or 0 when y is 0
func xdiv(x, y float64) float64 {
	if y == 0 {
		return 0
	}
	return x / y
}
