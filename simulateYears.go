// flockDemog project simulateYears.go
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

	"github.com/blgolden/flockDemog/flock"
	"github.com/blgolden/flockDemog/logger"
	"github.com/blgolden/flockDemog/results"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func simulateYears(ctx context.Context, sim *flock.Simulation) error {
	if logger.Verbose() {
		fmt.Printf("\n\tBeginning simulation for %v years\n", sim.Config.Years())
	}

	for sim.Year < sim.Config.Years() {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := sim.Step()
		if err != nil {
			return err
		}
		for _, r := range records {
			logger.LogWriter("year simulated",
				zap.String("herd", r.Herd),
				zap.Int("year", r.Year),
				zap.Int("births", r.Births),
				zap.Int("deaths", r.Deaths))
		}
		if sim.Year == sim.Config.Burnin && logger.Verbose() {
			fmt.Printf("\tBurnin of %d years complete\n", sim.Config.Burnin)
		}
	}
	return nil
}

// Save the records after the burnin if a results database was named
func storeResults(ctx context.Context, sim *flock.Simulation) error {
	if *resultsDb == "" {
		return nil
	}
	_, err := saveRun(ctx, *resultsDb, sim, *logger.Seed, *logger.User)
	return err
}

func saveRun(ctx context.Context, path string, sim *flock.Simulation, seed int64, user string) (uuid.UUID, error) {
	store, err := results.Open(path)
	if err != nil {
		return uuid.Nil, err
	}
	defer store.Close()

	run := results.NewRun(seed, user, sim.Config.Comment)
	if err := store.InsertRun(ctx, run, sim.Records()); err != nil {
		return uuid.Nil, err
	}
	logger.LogWriter("results stored", zap.String("run", run.Id.String()), zap.String("db", path))
	if logger.Verbose() {
		fmt.Println("Run", run.Id, "stored in", path)
	}
	return run.Id, nil
}
