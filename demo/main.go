// Package main demonstrates sampling-distribution simulation with seeded generators.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sartorproj/gostatsim/descriptive"
	"github.com/sartorproj/gostatsim/sampling"
	"github.com/sartorproj/gostatsim/simulation"
)

// Scenario defines one simulation experiment
type Scenario struct {
	Name         string // Display name
	Description  string // Brief description
	Statistic    simulation.StatisticFunc
	StatName     string // Statistic label
	Generator    simulation.SampleGenerator
	SampleSize   int
	NSimulations int
	Metadata     map[string]any
}

// OutputData holds all results for visualization
type OutputData struct {
	Scenarios []simulation.Result `json:"scenarios"`
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoStatSim Demonstration - Sampling Distributions of Statistics")
	fmt.Println(strings.Repeat("=", 80))

	observed := []float64{4.2, 5.1, 3.9, 6.3, 5.8, 4.7, 5.5, 4.1, 6.0, 5.2}

	variance := func(values []float64) (float64, error) {
		return descriptive.Variance(values)
	}

	scenarios := []Scenario{
		{Name: "Normal Mean", Description: "Mean of N(0,1) samples", Statistic: descriptive.Mean, StatName: "mean",
			Generator: sampling.Normal(0, 1, sampling.NewSource(42)), SampleSize: 30, NSimulations: 2000,
			Metadata: map[string]any{"distribution": "normal", "mu": 0.0, "sigma": 1.0}},
		{Name: "Normal Median", Description: "Median of N(0,1) samples", Statistic: descriptive.Median, StatName: "median",
			Generator: sampling.Normal(0, 1, sampling.NewSource(43)), SampleSize: 30, NSimulations: 2000,
			Metadata: map[string]any{"distribution": "normal", "mu": 0.0, "sigma": 1.0}},
		{Name: "Exponential Mean", Description: "Mean of Exp(1) samples, skewed parent", Statistic: descriptive.Mean, StatName: "mean",
			Generator: sampling.Exponential(1, sampling.NewSource(44)), SampleSize: 10, NSimulations: 2000,
			Metadata: map[string]any{"distribution": "exponential", "rate": 1.0}},
		{Name: "Uniform Variance", Description: "Sample variance of U(0,1) samples", Statistic: variance, StatName: "variance",
			Generator: sampling.Uniform(0, 1, sampling.NewSource(45)), SampleSize: 20, NSimulations: 2000,
			Metadata: map[string]any{"distribution": "uniform", "min": 0.0, "max": 1.0}},
		{Name: "Bootstrap Mean", Description: "Bootstrap resampling of an observed sample", Statistic: descriptive.Mean, StatName: "mean",
			Generator: sampling.Resample(observed, sampling.NewSource(46)), SampleSize: len(observed), NSimulations: 5000,
			Metadata: map[string]any{"distribution": "empirical", "n_observed": len(observed)}},
	}

	output := OutputData{Scenarios: []simulation.Result{}}

	for i, sc := range scenarios {
		fmt.Printf("\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, len(scenarios), sc.Name, strings.Repeat("=", 80))
		fmt.Printf("   %s\n", sc.Description)

		result, err := simulation.Run(sc.Generator, sc.Statistic, sc.SampleSize, sc.NSimulations,
			&simulation.Options{StatisticName: sc.StatName, Metadata: sc.Metadata})
		if err != nil {
			fmt.Printf("   Error: %v\n", err)
			continue
		}

		s := result.Summary
		fmt.Printf("   %d trials of %s over samples of size %d\n", result.NSimulations, result.StatisticName, result.SampleSize)
		fmt.Printf("   mean=%.4f std=%.4f min=%.4f q1=%.4f median=%.4f q3=%.4f max=%.4f\n",
			s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)

		output.Scenarios = append(output.Scenarios, *result)
	}

	// Export results
	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding results: %v\n", err)
	} else if err := os.WriteFile("simulation_results.json", data, 0644); err != nil {
		fmt.Printf("Error writing simulation_results.json: %v\n", err)
	} else {
		fmt.Printf("Exported %d scenarios to simulation_results.json\n", len(output.Scenarios))
	}

	fmt.Println(strings.Repeat("=", 80))
}
