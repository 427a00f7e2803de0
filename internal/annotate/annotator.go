package annotate

import (
	"context"
	"sort"
)

// Annotator defines the interface for linguistic annotation engines.
// The extractor consumes sentence boundaries and per-token annotations;
// it has no linguistic capability of its own.
type Annotator interface {
	// Name returns the engine name
	Name() string

	// Annotate segments text into sentences with per-token annotations
	Annotate(ctx context.Context, text string) ([]Sentence, error)

	// IsAvailable checks if the engine is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Token represents one word of a sentence with its annotations
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// Lower-cased base form
	Lemma string `json:"lemma"`

	// Coarse part-of-speech: VERB, NOUN, PRON, PROPN, ...
	Pos string `json:"pos"`

	// Fine-grained form, e.g. VBZ for third-person-singular-present
	Tag string `json:"tag"`

	// Dependency label: nsubj, ccomp, xcomp, advcl, acl, ...
	Dep string `json:"dep"`

	// Index of the syntactic head token within the same sentence
	Head int `json:"head"`

	// Position of the token within the sentence, starting at 0
	Index int `json:"index"`

	// Named-entity label, e.g. PERSON; empty when not part of an entity
	Ent string `json:"ent,omitempty"`
}

// Sentence is an ordered sequence of annotated tokens
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Dependents returns the indices of the direct dependents of token i,
// in token order. A root token (head pointing at itself) is never its
// own dependent.
func (s Sentence) Dependents(i int) []int {
	var deps []int
	for j, t := range s.Tokens {
		if t.Head == i && j != i {
			deps = append(deps, j)
		}
	}
	return deps
}

// Subtree returns token i and all its descendants by head links,
// sorted by token index.
func (s Sentence) Subtree(i int) []Token {
	if i < 0 || i >= len(s.Tokens) {
		return nil
	}

	seen := map[int]bool{i: true}
	queue := []int{i}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range s.Dependents(cur) {
			if !seen[d] {
				seen[d] = true
				queue = append(queue, d)
			}
		}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	tokens := make([]Token, len(indices))
	for n, idx := range indices {
		tokens[n] = s.Tokens[idx]
	}
	return tokens
}
