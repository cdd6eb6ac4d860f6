// Command shiftscan extracts employee clock-in/out times from a scanned
// timesheet, reviews them interactively, and prints a weekly summary.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/joho/godotenv"

	"shiftscan/pkg/enhance"
	"shiftscan/pkg/extract"
	"shiftscan/pkg/timesheet"
)

var (
	imagePath = flag.String("image", "", "Local timesheet image; analyzed with Textract unless -local is set")
	bucket    = flag.String("bucket", "", "S3 bucket holding the timesheet image (or SHIFTSCAN_BUCKET)")
	srcKey    = flag.String("key", "", "S3 object key of the source image (or SHIFTSCAN_KEY)")
	localOCR  = flag.Bool("local", false, "Use local Tesseract instead of AWS Textract")
	watchDir  = flag.String("watch", "", "Watch a directory and process new images with local OCR (non-interactive)")
	noEdit    = flag.Bool("no-edit", false, "Skip the interactive review loop")
	verbose   = flag.Bool("verbose", false, "Verbose per-stage logging")
)

func logV(format string, args ...any) {
	if *verbose {
		log.Printf(format, args...)
	}
}

func main() {
	flag.Parse()
	// Optional .env for AWS credentials and bucket defaults.
	_ = godotenv.Load()

	if *bucket == "" {
		*bucket = os.Getenv("SHIFTSCAN_BUCKET")
	}
	if *srcKey == "" {
		*srcKey = os.Getenv("SHIFTSCAN_KEY")
	}

	ctx := context.Background()

	if *watchDir != "" {
		if err := watchLoop(ctx, *watchDir); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
		return
	}

	cells, err := extractCells(ctx)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}
	logV("extracted %d cells", len(cells))

	sheet := buildSheet(cells)
	printDiagnostics(sheet)

	if !*noEdit {
		runEditLoop(sheet, os.Stdin)
	}
	printSummary(sheet)
}

// extractCells picks the provider from the flags: local Tesseract, Textract
// over inline bytes, or the S3 enhance round trip the scanner normally runs.
func extractCells(ctx context.Context) ([]extract.Cell, error) {
	if *localOCR {
		if *imagePath == "" {
			log.Fatalf("-local requires -image")
		}
		logV("local OCR on %s", *imagePath)
		return extract.NewTesseract(*imagePath).ExtractCells(ctx)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("aws configuration: %v", err)
	}
	tx := textract.NewFromConfig(cfg)

	if *imagePath != "" && *bucket == "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			log.Fatalf("read %s: %v", *imagePath, err)
		}
		enhanced, _, err := enhance.Bytes(data, *imagePath)
		if err != nil {
			log.Fatalf("enhance %s: %v", *imagePath, err)
		}
		return extract.NewTextractBytes(tx, enhanced).ExtractCells(ctx)
	}

	if *bucket == "" || *srcKey == "" {
		log.Fatalf("S3 configuration incomplete: set -bucket and -key (or -image for a local file)")
	}

	store := extract.NewObjectStore(s3.NewFromConfig(cfg), *bucket)
	logV("downloading s3://%s/%s", *bucket, *srcKey)
	data, err := store.Get(ctx, *srcKey)
	if err != nil {
		return nil, err
	}

	dstKey := enhance.ProcessedKey(*srcKey)
	enhanced, contentType, err := enhance.Bytes(data, dstKey)
	if err != nil {
		return nil, err
	}
	logV("uploading enhanced copy to s3://%s/%s", *bucket, dstKey)
	if err := store.Put(ctx, dstKey, enhanced, contentType); err != nil {
		return nil, err
	}

	return extract.NewTextractS3(tx, *bucket, dstKey).ExtractCells(ctx)
}

// buildSheet converts extracted cells to timesheet rows (column 1 is the
// name, the rest in column order) and runs the core pipeline.
func buildSheet(cells []extract.Cell) *timesheet.Sheet {
	var rows []timesheet.Row
	for _, r := range extract.GroupRows(cells) {
		row := timesheet.Row{Name: r.Cell(1)}
		for _, col := range r.OrderedCols() {
			if col > 1 {
				row.Cells = append(row.Cells, r.Cell(col))
			}
		}
		rows = append(rows, row)
	}
	return timesheet.Build(rows, timesheet.DefaultConfig())
}
