package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/trainlens/trainlens/internal/datagen"
	"github.com/trainlens/trainlens/pkg/logger"
)

func main() {
	var (
		cohortSize = flag.Int("size", datagen.DefaultCohortSize, "Number of records per cohort")
		seed       = flag.Int64("seed", datagen.DefaultSeed, "Random seed (same seed, same dataset)")
		outputFile = flag.String("output", "", "Output CSV file (default: dataset_TIMESTAMP.csv)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	ctx := context.Background()

	output := *outputFile
	if output == "" {
		output = "dataset_" + time.Now().Format("20060102_150405") + ".csv"
	}

	records := datagen.Generate(datagen.Config{
		CohortSize: *cohortSize,
		Seed:       *seed,
		OutputFile: output,
	})

	if err := datagen.WriteCSVFile(output, records); err != nil {
		logger.Get().Error(ctx, "failed to write dataset", logger.Error(err))
		os.Exit(1)
	}

	logger.Get().Info(ctx, "dataset generated",
		logger.String("output", output),
		logger.Int("records", len(records)),
		logger.Any("seed", *seed),
	)
}
