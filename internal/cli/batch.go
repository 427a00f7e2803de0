package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pmorozov/inklet/internal/model"
	"github.com/pmorozov/inklet/internal/pipeline"
	"github.com/pmorozov/inklet/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract bubbles from many paragraphs in parallel",
	Long: `Batch processes many paragraphs concurrently:
- Read paragraphs from input file (one per line, # comments skipped)
- Process paragraphs in parallel with configurable worker count
- Throttle calls to the remote annotation engine
- Write one combined JSON report

Example:
  inklet batch paragraphs.txt
  inklet batch paragraphs.txt --concurrency 8 --output-dir ./bubbles
  inklet batch paragraphs.txt --annotator openai --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./inklet-bubbles", "output directory for the report")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Annotator flags shared with extract
	batchCmd.Flags().StringVar(&annProvider, "annotator", "spacy", "annotation engine (spacy, openai)")
	batchCmd.Flags().StringVar(&annModel, "annotator-model", "", "model name (openai annotator)")
	batchCmd.Flags().StringVar(&annBaseURL, "annotator-url", "", "annotation service base URL")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable annotation cache")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist annotation cache to this directory")
	batchCmd.Flags().Float64Var(&requestsPerSecond, "rps", 8, "max annotation requests per second")
	batchCmd.Flags().IntVar(&maxDialogues, "max-dialogues", 0, "max bubbles per paragraph, dialogue kept over scene narration (0 = all)")
}

var requestsPerSecond float64

// batchEntry is the JSON shape of one processed paragraph
type batchEntry struct {
	Index   int            `json:"index"`
	Text    string         `json:"text"`
	Bubbles []model.Bubble `json:"bubbles,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Inklet Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimit.RequestsPerSecond = requestsPerSecond

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p.Extractor(), concurrency, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)

	fmt.Fprintf(os.Stderr, "⚙️  Reading paragraphs from file...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Processed %d paragraphs with %d workers\n", len(results), concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ paragraph %d: %v\n", result.Index+1, result.Error)
			continue
		}

		successCount++
		result.Bubbles = pipeline.FilterDialogues(result.Bubbles, maxDialogues)
		for _, bubble := range result.Bubbles {
			if bubble.Character != "" {
				fmt.Printf("[%s] %s: %s\n", bubble.Type, bubble.Character, bubble.Text)
			} else {
				fmt.Printf("[%s] %s\n", bubble.Type, bubble.Text)
			}
		}
	}

	// Combined JSON report
	entries := make([]batchEntry, len(results))
	for i, result := range results {
		entries[i] = batchEntry{
			Index:   result.Index,
			Text:    result.Text,
			Bubbles: result.Bubbles,
		}
		if result.Error != nil {
			entries[i].Error = result.Error.Error()
		}
	}

	reportPath := filepath.Join(outputDir, "bubbles.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(reportPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d paragraphs\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", reportPath)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
