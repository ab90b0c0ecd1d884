package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/cargolp/pkg/lp"
	"github.com/limaJavier/cargolp/pkg/model"

	"github.com/samber/lo"
)

const (
	resultsFile = "benchmark_results.csv"
	repetitions = 20
	sizes       = "1x1,2x2,5x5,10x10,10x50,50x10,50x50,100x100,200x100"
	KB          = 1024
)

type BenchmarkResult struct {
	Naming      lp.Naming
	K, N        int
	Variables   int
	Constraints int
	Bytes       int
	Duration    time.Duration // mean over the repetitions
}

func main() {
	grid, err := parseSizes(sizes)
	if err != nil {
		log.Fatalf("invalid size grid: %v", err)
	}

	namings := []lp.Naming{lp.NamingCompact, lp.NamingDelimited}
	results := make([]BenchmarkResult, 0, len(grid)*len(namings))

	for _, size := range grid {
		k, n := size.A, size.B
		input := model.RandomInput(k, n)

		for _, naming := range namings {
			fmt.Printf("Benchmarking k = %v, n = %v with naming \"%v\"\n", k, n, naming)

			options := lp.DefaultOptions()
			options.Naming = naming
			results = append(results, measure(lp.NewCargoGenerator(options), input, naming))
		}
	}

	toCsv(results)
}

func measure(generator lp.Generator, input model.ModelInput, naming lp.Naming) BenchmarkResult {
	var lpModel *lp.Model
	start := time.Now()
	for range repetitions {
		var err error
		lpModel, err = generator.Generate(input)
		if err != nil {
			log.Fatalf("an error occurred during generation with k = %v, n = %v: %v", input.K(), input.N(), err)
		}
	}
	elapsed := time.Since(start)

	return BenchmarkResult{
		Naming:      naming,
		K:           input.K(),
		N:           input.N(),
		Variables:   lpModel.Variables,
		Constraints: lpModel.Constraints,
		Bytes:       len(lpModel.Text),
		Duration:    elapsed / repetitions,
	}
}

// parseSizes parses "k1xn1,k2xn2,..."
func parseSizes(sizesStr string) ([]lo.Tuple2[int, int], error) {
	grid := make([]lo.Tuple2[int, int], 0)
	for _, sizeStr := range strings.Split(sizesStr, ",") {
		parts := strings.Split(strings.TrimSpace(sizeStr), "x")
		if len(parts) != 2 {
			return nil, fmt.Errorf("size %q is not of the form kxn", sizeStr)
		}
		k, err := strconv.Atoi(parts[0])
		if err != nil || k < 1 {
			return nil, fmt.Errorf("invalid number of compartments in %q", sizeStr)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid number of loads in %q", sizeStr)
		}
		grid = append(grid, lo.T2(k, n))
	}
	return grid, nil
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Naming", "K", "N", "Variables", "Constraints", "Size(KB)", "Duration(us)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Naming.String(),
			fmt.Sprintf("%d", result.K),
			fmt.Sprintf("%d", result.N),
			fmt.Sprintf("%d", result.Variables),
			fmt.Sprintf("%d", result.Constraints),
			fmt.Sprintf("%.1f", float32(result.Bytes)/KB),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
