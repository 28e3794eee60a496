// flockDemog project main.go
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
	"fmt"
	"os"
	"os/signal"

	"github.com/blgolden/flockDemog/flock"
	"github.com/blgolden/flockDemog/logger"
)

var version = "beta0.1.0"

func printTables(sim *flock.Simulation) {
	records := sim.Records()
	summary := flock.Summarize(records)

	switch logger.Mode() {
	case "verbose":
		fmt.Println(flock.RecordHeader)
		for _, r := range records {
			fmt.Println(r)
		}
		fmt.Println()
		for i, name := range flock.SummaryNames {
			fmt.Printf("%-16s %10.4f\n", name, summary.Values()[i])
		}
		if sim.Config.JoiningDays > 0 {
			printCycleRates(sim)
		}
	case "model":
		// One line for callers that read the output
		for i, v := range summary.Values() {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(v)
		}
		fmt.Println()
	}
}

// Conception per oestrous cycle needed for each herd's season rate
func printCycleRates(sim *flock.Simulation) {
	fmt.Printf("\nJoining for %d days\n", sim.Config.JoiningDays)
	fmt.Println("Herd         Season   Cycle")
	for _, h := range sim.Herds {
		rates, err := h.Genotype.Conceptions()
		if err != nil || h.Genotype.OvulationPeriod <= 0 {
			continue
		}
		season := rates[0] + rates[1] + rates[2]
		cycle := flock.PerCycleConception(season, sim.Config.JoiningDays, h.Genotype.OvulationPeriod)
		fmt.Printf("%-12s %6.3f %7.3f\n", h.Name, season, cycle)
	}
}

// run simulates the years, prints the tables and stores the records. The
// caller closes the output files.
func run(ctx context.Context, sim *flock.Simulation) error {
	if err := simulateYears(ctx, sim); err != nil {
		return err
	}
	printTables(sim)
	return storeResults(ctx, sim)
}

func main() {

	sim := initSimulation() // Initialize everything

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, sim)
	stop()

	// LogWriterFatal exits, so the files are closed first
	if cerr := closeOutputFiles(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.LogWriterFatal(err.Error())
	}
	logger.Sync()
}
