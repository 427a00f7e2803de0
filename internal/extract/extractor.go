// Package extract turns prose paragraphs into ordered, classified
// comic-dialogue bubbles. Quoted spans are classified in place; reported
// speech in the remaining text is converted to direct first-person
// speech; everything else becomes scene narration.
package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pmorozov/inklet/internal/annotate"
	"github.com/pmorozov/inklet/internal/model"
)

// Extractor extracts bubbles from paragraphs. It is pure per call: the
// only shared state is the immutable lexicon, so one Extractor may be
// used from any number of goroutines.
type Extractor struct {
	annotator annotate.Annotator
	lexicon   *Lexicon
}

// NewExtractor creates an extractor around the given annotation engine.
// Fails if the built-in verb-class tables are not mutually disjoint.
func NewExtractor(annotator annotate.Annotator) (*Extractor, error) {
	lexicon, err := NewLexicon()
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	return &Extractor{
		annotator: annotator,
		lexicon:   lexicon,
	}, nil
}

// ProcessParagraph extracts the ordered bubble sequence for one
// paragraph. An empty paragraph yields an empty sequence, not an error;
// an annotation engine failure fails the whole call.
func (e *Extractor) ProcessParagraph(ctx context.Context, paragraph string) ([]model.Bubble, error) {
	if strings.TrimSpace(paragraph) == "" {
		return nil, nil
	}

	var bubbles []model.Bubble

	spans := findQuotes(paragraph)
	for _, span := range spans {
		character, err := e.speakerFromContext(ctx, span)
		if err != nil {
			return nil, fmt.Errorf("attribute speaker: %w", err)
		}

		bubbles = append(bubbles, model.Bubble{
			Type:      e.classifyQuote(span),
			Text:      strings.TrimSpace(span.Text),
			Character: character,
			Source:    span.Text,
		})
	}

	for _, segment := range residualSegments(paragraph, spans) {
		segmentBubbles, err := e.processSegment(ctx, segment)
		if err != nil {
			return nil, err
		}
		bubbles = append(bubbles, segmentBubbles...)
	}

	sortByPosition(bubbles, paragraph)

	return bubbles, nil
}

// processSegment converts the sentences of a non-quoted segment, falling
// back to a scene bubble per sentence when no conversion is possible
func (e *Extractor) processSegment(ctx context.Context, segment string) ([]model.Bubble, error) {
	sentences, err := e.annotator.Annotate(ctx, segment)
	if err != nil {
		return nil, fmt.Errorf("annotate segment: %w", err)
	}

	var bubbles []model.Bubble
	for _, sent := range sentences {
		sentText := strings.TrimSpace(sent.Text)
		if sentText == "" {
			continue
		}

		clause, ok := e.findIndirect(sent)
		if !ok {
			bubbles = append(bubbles, model.Bubble{
				Type:   model.BubbleScene,
				Text:   sentText,
				Source: sentText,
			})
			continue
		}

		direct, err := e.firstPerson(ctx, clause.content, clause.subject)
		if err != nil {
			return nil, err
		}

		bubbles = append(bubbles, model.Bubble{
			Type:      clause.class.bubbleType(),
			Text:      direct,
			Character: clause.subject,
			Source:    clause.content,
		})
	}

	return bubbles, nil
}

// sortByPosition orders bubbles by where their text occurs in the
// original paragraph. Rewritten clauses rarely occur verbatim, so the
// lookup falls back to the retained source text, then the character
// name, then a sentinel that sorts after every real position. The sort
// is stable, so unplaceable bubbles keep their insertion order.
func sortByPosition(bubbles []model.Bubble, paragraph string) {
	lower := strings.ToLower(paragraph)
	sentinel := len(paragraph) + 1

	position := func(b model.Bubble) int {
		if pos := strings.Index(lower, strings.ToLower(b.Text)); pos >= 0 {
			return pos
		}
		if b.Source != "" {
			if pos := strings.Index(lower, strings.ToLower(b.Source)); pos >= 0 {
				return pos
			}
		}
		if b.Character != "" {
			if pos := strings.Index(lower, strings.ToLower(b.Character)); pos >= 0 {
				return pos
			}
		}
		return sentinel
	}

	sort.SliceStable(bubbles, func(i, j int) bool {
		return position(bubbles[i]) < position(bubbles[j])
	})
}
