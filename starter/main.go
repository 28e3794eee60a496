// starter project main.go
// Runs replicates of a flockDemog simulation and summarizes them
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
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/blgolden/flockDemog/flock"
	"github.com/blgolden/flockDemog/genotype"
	"github.com/blgolden/flockDemog/logger"
	"github.com/blgolden/flockDemog/paramFile"
	"github.com/blgolden/flockDemog/varStuff"

	hjson "github.com/hjson/hjson-go"
	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

var version string = "beta0.1.0"
var modelParam *string
var genotypesParam *string
var numberSpawned int // Number of replicate simulations

type replicate_t struct {
	seed    int64
	summary flock.Summary_t
	err     error
}

type summaryTable_t struct {
	name         string
	mean         float64
	stddev       float64
	stddevMean   float64
	replications int
}

// One replicate. Each gets its own catalog so the genotype preparation of
// one run cannot reach another.
func multistart(ctx context.Context, swg *sizedwaitgroup.SizedWaitGroup, c *flock.Config, lib *paramFile.Library, seed int64, ch chan replicate_t) {

	defer swg.Done()

	r := replicate_t{seed: seed}
	sim, err := flock.NewSimulation(c, genotype.NewCatalog(lib), seed)
	if err == nil {
		err = sim.Run(ctx)
	}
	if err != nil {
		r.err = err
	} else {
		r.summary = flock.Summarize(sim.Records())
	}
	ch <- r
}

// Launch the replicates, at most one per CPU at a time
func launchSimulations(ctx context.Context, c *flock.Config, lib *paramFile.Library, seeds []int64) []replicate_t {

	swg := sizedwaitgroup.New(runtime.NumCPU())

	ch := make(chan replicate_t, len(seeds)) // Buffered channel for results

	for _, seed := range seeds {
		swg.Add()
		go multistart(ctx, &swg, c, lib, seed, ch)
	}

	swg.Wait()
	close(ch)

	var reps []replicate_t
	for r := range ch {
		reps = append(reps, r)
	}
	return reps
}

// Mean and spread of each summary value over the replicates that finished
func summarizeReplicates(reps []replicate_t) ([]summaryTable_t, [][]float64) {
	var samples [][]float64
	for _, r := range reps {
		if r.err == nil {
			samples = append(samples, r.summary.Values())
		}
	}

	table := make([]summaryTable_t, len(flock.SummaryNames))
	n := float64(len(samples))
	for j, name := range flock.SummaryNames {
		col := make([]float64, len(samples))
		for i := range samples {
			col[i] = samples[i][j]
		}
		table[j] = summaryTable_t{name: name, replications: len(samples)}
		if len(samples) == 0 {
			continue
		}
		mean, variance := stat.MeanVariance(col, nil)
		if len(samples) < 2 {
			variance = 0
		}
		table[j].mean = mean
		table[j].stddev = math.Sqrt(variance)
		table[j].stddevMean = math.Sqrt(variance / n)
	}
	return table, samples
}

// Write the table of replicate means to w
func publishTable(w io.Writer, table []summaryTable_t, samples [][]float64) {

	fmt.Fprintln(w, "\t ____________________________________________________")
	fmt.Fprintln(w, "\t| Summary         |    Mean    |   StdDev   | SD(Mean) |")
	fmt.Fprintln(w, "\t|_________________|____________|____________|__________|")
	for _, s := range table {
		fmt.Fprintf(w, "\t| %-15s | %10.4f | %10.4f | %8.4f |\n", s.name, s.mean, s.stddev, s.stddevMean)
	}
	fmt.Fprintln(w, "\t|____________________________________________________|")
	if len(table) > 0 {
		fmt.Fprintf(w, "\t *Number of replicates: %d\n", table[0].replications)
	}

	cov, err := varStuff.Covariance(samples)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "\nCorrelations between the summaries:")
	varStuff.MatPrint(w, varStuff.Correlation(cov))
	if _, ok := varStuff.Factor(cov); !ok {
		fmt.Fprintln(w, "\t *Covariance is not positive definite, some summaries are fixed or collinear")
	}
}

// Parse the arg list looking for the input hjson file
func parseArgs() {

	modelParam = flag.String("genParm", "", "The flockDemog parameter file (required)")
	genotypesParam = flag.String("genotypes", "", "The genotype library hjson file")
	logger.OutputMode = flag.String("outputMode", "verbose", "'verbose'(default) or 'table'")
	logger.User = flag.String("user", "admin", "user=[Username]")
	ns := flag.Int("nSamples", 100, "Number of replicate simulations (default 100)")
	logger.Seed = flag.Int64("seed", 1234, "Random number generator seed (int64)")
	isVersion := flag.Bool("version", false, "prints the version number of starter")

	flag.Parse()

	if *isVersion {
		fmt.Println("Version:", version)
		os.Exit(0)
	}

	numberSpawned = *ns

	if *modelParam == "" {
		if logger.Verbose() {
			fmt.Printf("Usage of ./starter:\n\n")
			flag.PrintDefaults()
		}
		logger.LogWriterFatal("no parameter file name provided")
	}
}

// Read the parameter and genotype files
func loadModel(name, genotypes string) (*flock.Config, *paramFile.Library, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, err
	}
	var param map[string]interface{}
	if err := hjson.Unmarshal(b, &param); err != nil {
		return nil, nil, fmt.Errorf("parameter file %s: %w", name, err)
	}
	c, err := flock.ParseConfig(param)
	if err != nil {
		return nil, nil, err
	}

	if genotypes == "" {
		genotypes, _ = param["genotypeFile"].(string)
		if genotypes != "" && !filepath.IsAbs(genotypes) {
			genotypes = filepath.Join(filepath.Dir(name), genotypes)
		}
	}
	lib, err := paramFile.Load(genotypes)
	if err != nil {
		return nil, nil, err
	}
	return c, lib, nil
}

// Seeds for the replicates drawn from the master seed
func replicateSeeds(seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int63n(100000)
	}
	return seeds
}

func main() {

	parseArgs()
	defer logger.Sync()

	c, lib, err := loadModel(*modelParam, *genotypesParam)
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}

	start := time.Now()
	reps := launchSimulations(context.Background(), c, lib, replicateSeeds(*logger.Seed, numberSpawned))
	elapsed := time.Since(start)

	for _, r := range reps {
		if r.err != nil {
			logger.LogWriter("replicate failed", zap.Int64("seed", r.seed), zap.Error(r.err))
		}
	}

	table, samples := summarizeReplicates(reps)
	if logger.Verbose() {
		fmt.Println("Total time:", elapsed, "Time per sample:", elapsed.Seconds()/float64(len(reps)), "Using", runtime.NumCPU(), "CPUs")
	}
	if logger.Mode() == "verbose" || logger.Mode() == "table" {
		publishTable(os.Stdout, table, samples)
	}
}
