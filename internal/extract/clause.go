package extract

import (
	"regexp"
	"strings"

	"github.com/pmorozov/inklet/internal/annotate"
	"github.com/pmorozov/inklet/internal/model"
)

// Dependency labels that mark the complement clause of a reporting verb
var clauseDeps = map[string]bool{
	"ccomp": true,
	"xcomp": true,
	"advcl": true,
	"acl":   true,
}

// Leading complementizer/discourse words stripped from extracted clauses
var complementizerRe = regexp.MustCompile(`(?i)^\s*(if|that|whether|how|why|when|where)\s+`)

// indirectClause holds the raw pieces of a convertible reported-speech
// sentence before the first-person rewrite
type indirectClause struct {
	class   verbClass
	subject string
	content string
}

// findIndirect scans a sentence for a governing speech/thought/shout verb
// and extracts its complement clause. Returns false when the sentence has
// no governing verb or the verb has no complement clause; the caller
// falls back to a scene bubble.
func (e *Extractor) findIndirect(sent annotate.Sentence) (indirectClause, bool) {
	verbIdx := -1
	var class verbClass

	for i, tok := range sent.Tokens {
		if c, ok := e.lexicon.Classify(strings.ToLower(tok.Lemma)); ok {
			verbIdx = i
			class = c
			break
		}
	}
	if verbIdx < 0 {
		return indirectClause{}, false
	}

	subject := ""
	for _, tok := range sent.Tokens {
		if tok.Dep == "nsubj" && tok.Head == verbIdx {
			subject = tok.Text
			break
		}
	}

	content := ""
	for _, depIdx := range sent.Dependents(verbIdx) {
		if !clauseDeps[sent.Tokens[depIdx].Dep] {
			continue
		}

		parts := make([]string, 0, len(sent.Tokens))
		for _, tok := range sent.Subtree(depIdx) {
			parts = append(parts, tok.Text)
		}
		content = strings.TrimSpace(complementizerRe.ReplaceAllString(strings.Join(parts, " "), ""))
		break
	}
	if content == "" {
		return indirectClause{}, false
	}

	return indirectClause{
		class:   class,
		subject: subject,
		content: content,
	}, true
}

// bubbleType maps a verb class to its bubble type
func (c verbClass) bubbleType() model.BubbleType {
	switch c {
	case classShout:
		return model.BubbleShout
	case classThought:
		return model.BubbleThought
	default:
		return model.BubbleSpeech
	}
}
