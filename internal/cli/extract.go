package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pmorozov/inklet/internal/model"
	"github.com/pmorozov/inklet/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	inFile       string
	inURL        string
	outJSON      string
	outMD        string
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	cacheDir     string
	ignoreRobots bool
	annProvider  string
	annModel     string
	annBaseURL   string
	maxDialogues int
	httpProxy    string
	httpsProxy   string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [paragraph]",
	Short: "Extract dialogue bubbles from a paragraph, file, or URL",
	Long: `Extract turns prose into an ordered bubble sequence:
- Locate and classify quoted dialogue (speech, thought, shout)
- Convert reported speech to direct first-person speech
- Fall back to scene narration for everything else

Input comes from the argument, --file ('-' for stdin), or --url.

Example:
  inklet extract "'Run!' he shouted."
  inklet extract --file chapter1.txt --json bubbles.json
  inklet extract --url https://example.com/story --md bubbles.md
  inklet extract --annotator openai --annotator-model gpt-4o-mini "Sarah wondered if he was safe."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Input flags
	extractCmd.Flags().StringVar(&inFile, "file", "", "read prose from file ('-' for stdin)")
	extractCmd.Flags().StringVar(&inURL, "url", "", "fetch prose from URL")

	// Output flags
	extractCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	extractCmd.Flags().IntVar(&maxDialogues, "max-dialogues", 0, "max bubbles per paragraph, dialogue kept over scene narration (0 = all)")

	// Annotator flags
	extractCmd.Flags().StringVar(&annProvider, "annotator", "spacy", "annotation engine (spacy, openai)")
	extractCmd.Flags().StringVar(&annModel, "annotator-model", "", "model name (openai annotator)")
	extractCmd.Flags().StringVar(&annBaseURL, "annotator-url", "", "annotation service base URL")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable annotation cache")
	extractCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist annotation cache to this directory")

	// HTTP flags
	extractCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall extraction timeout")
	extractCmd.Flags().StringVar(&userAgent, "ua", "Inklet/0.1 (+https://github.com/pmorozov/inklet)", "HTTP User-Agent")
	extractCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	extractCmd.Flags().BoolVar(&ignoreRobots, "ignore-robots", false, "skip the robots.txt check for --url inputs")
	extractCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (default: environment)")
	extractCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (default: environment)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Annotator: %s\n", cfg.Annotator.Provider)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	var report *model.Report
	switch {
	case inURL != "":
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", inURL)
		}
		report, err = p.ExtractURL(ctx, inURL)

	case inFile != "":
		var data []byte
		if inFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(inFile)
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		report, err = p.ExtractText(ctx, inFile, string(data))

	case len(args) == 1:
		report, err = p.ExtractText(ctx, "paragraph", args[0])

	default:
		return fmt.Errorf("no input: pass a paragraph argument, --file, or --url")
	}
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Processed %d paragraphs\n", report.Stats.Paragraphs)
		fmt.Fprintf(os.Stderr, "✓ Bubbles: %d speech, %d thought, %d shout, %d scene\n",
			report.Stats.Speech, report.Stats.Thought, report.Stats.Shout, report.Stats.Scene)
		fmt.Fprintln(os.Stderr)
	}

	return renderReport(report, outJSON, outMD)
}

// buildConfig assembles the runtime configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Annotator.Provider = annProvider
	cfg.Annotator.Model = annModel
	if annBaseURL != "" {
		cfg.Annotator.BaseURL = annBaseURL
	}
	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.HTTP.IgnoreRobots = ignoreRobots
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	cfg.Output.MaxDialogues = maxDialogues

	if annProvider == "openai" {
		cfg.Annotator.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Annotator.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

// renderReport writes the report to stdout and any requested files
func renderReport(report *model.Report, jsonPath, mdPath string) error {
	renderer := pipeline.NewRenderer()

	if jsonPath != "" {
		if err := renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	return renderer.RenderText(report, os.Stdout)
}
