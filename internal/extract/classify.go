package extract

import (
	"context"
	"strings"
	"unicode"

	"github.com/pmorozov/inklet/internal/annotate"
	"github.com/pmorozov/inklet/internal/model"
)

// classifyQuote assigns a bubble type to a quoted span from its text and
// surrounding context. Rules are ordered; the first match wins and the
// order must not change: a shout verb in context outranks the punctuation
// rules, which outrank the thought-verb rule.
func (e *Extractor) classifyQuote(span model.QuoteSpan) model.BubbleType {
	window := strings.ToLower(span.Before) + " " + strings.ToLower(span.After)

	if containsAnyWord(window, e.lexicon.ShoutForms()) {
		return model.BubbleShout
	}
	if isUpper(span.Text) || strings.Count(span.Text, "!") >= 2 {
		return model.BubbleShout
	}
	if strings.HasSuffix(span.Text, "!") && len(strings.Fields(span.Text)) <= 3 {
		return model.BubbleShout
	}
	if containsAnyWord(window, e.lexicon.ThoughtForms()) {
		return model.BubbleThought
	}

	return model.BubbleSpeech
}

// speakerFromContext attributes a speaker to a quote: the first PERSON
// entity in the surrounding context, else the first proper noun, else
// empty. Name recognition comes from the annotation engine.
func (e *Extractor) speakerFromContext(ctx context.Context, span model.QuoteSpan) (string, error) {
	window := strings.TrimSpace(span.Before + " " + span.After)
	if window == "" {
		return "", nil
	}

	sentences, err := e.annotator.Annotate(ctx, window)
	if err != nil {
		return "", err
	}

	var properNoun string
	for _, sent := range sentences {
		for i, tok := range sent.Tokens {
			if tok.Ent == "PERSON" {
				return personSpan(sent.Tokens, i), nil
			}
			if properNoun == "" && tok.Pos == "PROPN" {
				properNoun = tok.Text
			}
		}
	}

	return properNoun, nil
}

// personSpan joins the run of PERSON-tagged tokens starting at i, so
// multi-word names attribute as a whole
func personSpan(tokens []annotate.Token, i int) string {
	parts := []string{tokens[i].Text}
	for j := i + 1; j < len(tokens) && tokens[j].Ent == "PERSON"; j++ {
		parts = append(parts, tokens[j].Text)
	}
	return strings.Join(parts, " ")
}

// containsAnyWord reports whether any whole word of s is in the set
func containsAnyWord(s string, set map[string]bool) bool {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		if set[strings.Trim(w, "'")] {
			return true
		}
	}
	return false
}

// isUpper reports whether s has at least one cased character and no
// lower-case ones
func isUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

