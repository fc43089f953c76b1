package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"SignalPipe/internal/logging"
	"SignalPipe/internal/model"
	"SignalPipe/internal/pipeline"
	"SignalPipe/internal/report"
)

func main() {
	input := flag.String("input", "", "Path to input CSV file.")
	configPath := flag.String("config", "", "Path to YAML config file.")
	output := flag.String("output", "", "Path to output metrics JSON.")
	logFile := flag.String("log-file", "", "Path to log file.")
	flag.Parse()

	if *input == "" || *configPath == "" || *output == "" || *logFile == "" {
		fmt.Fprintln(os.Stderr, "usage: pipeline --input data.csv --config config.yaml --output metrics.json --log-file run.log")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Optional .env for the PIPELINE_* config overrides.
	_ = godotenv.Load()

	log, logF, err := logging.New(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline: %v\n", err)
		os.Exit(2)
	}
	defer logF.Close()

	res := pipeline.New(*input, *configPath, log).Run()

	if err := report.Write(*output, res); err != nil {
		// Nothing left to write: log it and abort without a result file.
		ioErr := &pipeline.IOError{Err: err}
		log.Error().Err(ioErr).Msg("write output failed")
		fmt.Fprintf(os.Stderr, "pipeline: %v\n", ioErr)
		os.Exit(2)
	}
	if data, err := report.Render(res); err == nil {
		fmt.Println(string(data))
	}

	if res.Status == model.StatusError {
		os.Exit(1)
	}
	log.Info().Msg("job completed successfully")
}
