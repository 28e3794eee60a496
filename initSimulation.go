// flockDemog project initSimulation.go
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
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blgolden/flockDemog/flock"
	"github.com/blgolden/flockDemog/genotype"
	"github.com/blgolden/flockDemog/logger"
	"github.com/blgolden/flockDemog/paramFile"

	hjson "github.com/hjson/hjson-go"
	"go.uber.org/zap"
)

// setup the map of the array of json name:value pairs - notice "interface{}"
var param map[string]interface{}

var masterFile *string    // Name of the parameter file
var genotypesFile *string // Genotype library, overrides genotypeFile: in the parameter file
var resultsDb *string     // sqlite file for the yearly records (optional)
var ageFileName *string   // Overrides agefilename: in the parameter file

var ageFile *os.File

// Initialize the simulation
func initSimulation() *flock.Simulation {

	parseArgs()

	if err := loadParam(*masterFile); err != nil {
		logger.LogWriterFatal(err.Error())
	}

	if logger.Verbose() {
		if runComment, ok := param["Comment"].(string); ok {
			fmt.Printf("Comment: %v\n\n", runComment)
		}
	}

	sim, err := buildSimulation(param, filepath.Dir(*masterFile), *genotypesFile, *logger.Seed)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	logger.LogWriter("simulation initialised",
		zap.String("parameterFile", *masterFile),
		zap.Int("herds", len(sim.Herds)),
		zap.Int("years", sim.Config.Years()))

	if logger.Verbose() {
		fmt.Printf("Number of herds: %d\n", len(sim.Herds))
		for _, h := range sim.Herds {
			fmt.Printf("\t%s: %s, %d females, %d males\n", h.Name, h.Genotype.Name, h.TargetFemales, h.TargetMales)
			fmt.Print(h.Ages)
		}
	}

	if err := openOutputFiles(sim); err != nil {
		logger.LogWriterFatal(err.Error())
	}
	return sim
}

// buildSimulation makes the herds described by param. A relative genotype
// library path is taken from dir.
func buildSimulation(param map[string]interface{}, dir, genotypes string, seed int64) (*flock.Simulation, error) {
	c, err := flock.ParseConfig(param)
	if err != nil {
		return nil, err
	}

	if genotypes == "" {
		genotypes, _ = param["genotypeFile"].(string)
		if genotypes != "" && !filepath.IsAbs(genotypes) {
			genotypes = filepath.Join(dir, genotypes)
		}
	}
	if genotypes == "" {
		return nil, errors.New("no genotype library: use -genotypes or 'genotypeFile:'")
	}
	lib, err := paramFile.Load(genotypes)
	if err != nil {
		return nil, err
	}

	return flock.NewSimulation(c, genotype.NewCatalog(lib), seed)
}

// Open the output files in the parameter file
func openOutputFiles(sim *flock.Simulation) error {
	name := sim.Config.AgeFile
	if *ageFileName != "" {
		name = *ageFileName
	}
	if name == "" {
		return nil
	}

	var err error
	if ageFile, err = os.Create(name); err != nil {
		return err
	}
	sim.SetAgeFile(ageFile)
	return nil
}

func closeOutputFiles() error {
	if ageFile == nil {
		return nil
	}
	err := ageFile.Close()
	ageFile = nil
	return err
}

// Parse the arg list looking for the input hjson file
func parseArgs() {

	masterFile = flag.String("genParm", "", "The flockDemog parameter file (required)")
	genotypesFile = flag.String("genotypes", "", "The genotype library hjson file")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default), 'model' or 'quiet'")
	logger.User = flag.String("user", "admin", "user=[Username]")
	logger.Seed = flag.Int64("seed", 1234, "Random number generator seed (int64)")
	resultsDb = flag.String("resultsDb", "", "sqlite file to store the yearly records (optional)")
	ageFileName = flag.String("ageFile", "", "File for the yearly female age distribution (optional)")
	isVersion := flag.Bool("version", false, "prints the version number of flockDemog")

	flag.Parse()

	if *isVersion {
		fmt.Println("Version:", version)
		os.Exit(0)
	}

	if logger.Verbose() {
		fmt.Printf("\n\t*** flockDemog ver %v ***\n\n", version)
	}

	if *masterFile == "" {
		if logger.Verbose() {
			fmt.Printf("Error: A parameter file name must be provided on the command line\n\tflockDemog -genParm=[file name]\n\n")
			flag.PrintDefaults()
		}
		logger.LogWriterFatal("no parameter file name provided")
	}
}

// Read in the parameter hjson file and setup the map of param[key] pairs
func loadParam(name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to open parameter file: %w", err)
	}

	// Translate the byte array into the mapped array of name:value pairs
	if err := hjson.Unmarshal(b, &param); err != nil {
		return fmt.Errorf("parameter file %s: %w", name, err)
	}
	return nil
}
