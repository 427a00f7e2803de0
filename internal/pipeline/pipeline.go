// Package pipeline wires input acquisition, annotation, extraction, and
// report rendering into the complete inklet run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pmorozov/inklet/internal/annotate"
	"github.com/pmorozov/inklet/internal/cache"
	"github.com/pmorozov/inklet/internal/extract"
	"github.com/pmorozov/inklet/internal/model"
	"github.com/pmorozov/inklet/internal/util"
)

// Pipeline orchestrates the complete extraction process
type Pipeline struct {
	fetcher   *Fetcher
	annotator annotate.Annotator
	extractor *extract.Extractor
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	annotator, err := annotate.NewAnnotator(annotate.ConfigFromModel(cfg.Annotator))
	if err != nil {
		return nil, fmt.Errorf("create annotator: %w", err)
	}

	if cfg.Cache.Enabled {
		var store cache.Store
		if cfg.Cache.Dir != "" {
			store = cache.NewLayered(cfg.Cache.TTL, cfg.Cache.Dir, 24*cfg.Cache.TTL)
		} else {
			store = cache.NewMemory(cfg.Cache.TTL)
		}
		annotator = annotate.NewCachedAnnotator(annotator, store, cfg.Cache.TTL)
	}

	extractor, err := extract.NewExtractor(annotator)
	if err != nil {
		return nil, fmt.Errorf("create extractor: %w", err)
	}

	var robots *util.RobotsChecker
	if !cfg.HTTP.IgnoreRobots {
		robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	proxy := util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy)

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, robots, proxy),
		annotator: annotator,
		extractor: extractor,
		config:    cfg,
	}, nil
}

// Extractor exposes the underlying extractor
func (p *Pipeline) Extractor() *extract.Extractor {
	return p.extractor
}

// ExtractText extracts bubbles from raw prose, one paragraph per blank-
// line-separated block
func (p *Pipeline) ExtractText(ctx context.Context, subject, text string) (*model.Report, error) {
	return p.extractParagraphs(ctx, subject, SplitParagraphs(text))
}

// ExtractURL fetches a page and extracts bubbles from its paragraphs
func (p *Pipeline) ExtractURL(ctx context.Context, rawURL string) (*model.Report, error) {
	fetched, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	report, err := p.extractParagraphs(ctx, fetched.Subject, fetched.Paragraphs)
	if err != nil {
		return nil, err
	}

	report.SourceURL = fetched.FinalURL
	report.FetchMeta = fetched.Meta
	return report, nil
}

// extractParagraphs runs the extractor over each paragraph and builds
// the report
func (p *Pipeline) extractParagraphs(ctx context.Context, subject string, paragraphs []string) (*model.Report, error) {
	report := &model.Report{
		Subject:     subject,
		ExtractedAt: time.Now().UTC(),
		Annotator:   p.annotator.Name(),
	}

	for _, paragraph := range paragraphs {
		bubbles, err := p.extractor.ProcessParagraph(ctx, paragraph)
		if err != nil {
			return nil, fmt.Errorf("extract paragraph: %w", err)
		}
		bubbles = FilterDialogues(bubbles, p.config.Output.MaxDialogues)

		report.Paragraphs = append(report.Paragraphs, model.Paragraph{
			Text:    paragraph,
			Bubbles: bubbles,
			Hints:   hintsFor(bubbles),
		})

		report.Stats.Paragraphs++
		for _, b := range bubbles {
			report.Stats.Add(b.Type)
		}
	}

	return report, nil
}
