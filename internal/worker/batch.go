package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pmorozov/inklet/internal/model"
)

// Extractor defines the interface for extracting bubbles from a paragraph
type Extractor interface {
	ProcessParagraph(ctx context.Context, paragraph string) ([]model.Bubble, error)
}

// ParagraphJob extracts bubbles from one paragraph
type ParagraphJob struct {
	Index     int
	Text      string
	Extractor Extractor
	Limiter   *Limiter
	Key       string
}

// Execute executes the extraction job
func (j *ParagraphJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Key); err != nil {
			return &ParagraphResult{Index: j.Index, Text: j.Text, Error: err}
		}
	}

	bubbles, err := j.Extractor.ProcessParagraph(ctx, j.Text)
	return &ParagraphResult{
		Index:   j.Index,
		Text:    j.Text,
		Bubbles: bubbles,
		Error:   err,
	}
}

// ParagraphResult represents the result of a paragraph job
type ParagraphResult struct {
	Index   int
	Text    string
	Bubbles []model.Bubble
	Error   error
}

// GetError returns the error from the result
func (r *ParagraphResult) GetError() error {
	return r.Error
}

// BatchProcessor processes many paragraphs concurrently, throttling how
// fast jobs may reach the remote annotation engine
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
	limiter     *Limiter
	limiterKey  string
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(extractor Extractor, concurrency int, requestsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
		limiterKey:  "annotator",
	}
}

// ProcessParagraphs processes paragraphs concurrently; results come back
// in input order
func (b *BatchProcessor) ProcessParagraphs(ctx context.Context, paragraphs []string) []*ParagraphResult {
	if len(paragraphs) == 0 {
		return []*ParagraphResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, text := range paragraphs {
		pool.Submit(&ParagraphJob{
			Index:     i,
			Text:      text,
			Extractor: b.extractor,
			Limiter:   b.limiter,
			Key:       b.limiterKey,
		})
	}

	results := pool.Wait()

	paragraphResults := make([]*ParagraphResult, len(results))
	for i, result := range results {
		paragraphResults[i] = result.(*ParagraphResult)
	}

	sort.Slice(paragraphResults, func(i, j int) bool {
		return paragraphResults[i].Index < paragraphResults[j].Index
	})

	return paragraphResults
}

// ProcessFile reads paragraphs from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ParagraphResult, error) {
	paragraphs, err := ReadParagraphsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read paragraphs: %w", err)
	}

	return b.ProcessParagraphs(ctx, paragraphs), nil
}

// ReadParagraphsFromFile reads paragraphs from a file, one per line;
// blank lines and #-comments are skipped
func ReadParagraphsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paragraphs []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		paragraphs = append(paragraphs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paragraphs, nil
}
