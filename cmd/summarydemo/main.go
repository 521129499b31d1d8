package main

// Compute a summary from a local review export without running the server:
//   go run ./cmd/summarydemo -file export.csv -period last90days

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"reviews-backend/internal/ingest"
	"reviews-backend/internal/insights"
	"reviews-backend/internal/reviews"
)

func main() {
	file := flag.String("file", "", "review export to analyze (.csv or .json)")
	period := flag.String("period", "all", "time period preset")
	comparison := flag.String("comparison", "previous", "comparison period")
	flag.Parse()

	if *file == "" {
		log.Fatalf("-file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open export: %v", err)
	}
	defer f.Close()

	var revs []reviews.Review
	switch strings.ToLower(filepath.Ext(*file)) {
	case ".csv":
		revs, err = ingest.ParseCSV(f)
	case ".json":
		revs, err = ingest.ParseJSON(f)
	default:
		log.Fatalf("unsupported extension: %s", *file)
	}
	if err != nil {
		log.Fatalf("parse export: %v", err)
	}

	engine := insights.NewEngine(nil, nil)
	summary, err := engine.Generate(revs, insights.AnalysisConfig{
		TimePeriod:              insights.TimePeriod(*period),
		ComparisonPeriod:        insights.ComparisonPeriod(*comparison),
		IncludeThematicAnalysis: true,
		IncludeActionItems:      true,
		IncludeStaffAnalysis:    true,
	})
	if err != nil {
		log.Fatalf("generate summary: %v", err)
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatalf("encode summary: %v", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
