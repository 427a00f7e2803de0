package extract

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pmorozov/inklet/internal/annotate"
)

// Tokens that attach to the preceding word with no space
var noSpaceBefore = map[string]bool{
	".": true, ",": true, "!": true, "?": true,
	"'": true, ";": true, ":": true, ")": true,
}

// Tokens whose following word attaches with no space
var noSpaceAfter = map[string]bool{
	"(": true, `"`: true, "'": true,
}

// firstPerson converts a reported third-person clause into direct
// first-person speech: the named character and mapped pronouns become
// first person, and a present-tense verb directly after the new "I"/"we"
// is de-conjugated to its lemma.
func (e *Extractor) firstPerson(ctx context.Context, text, character string) (string, error) {
	sentences, err := e.annotator.Annotate(ctx, text)
	if err != nil {
		return "", fmt.Errorf("annotate clause: %w", err)
	}

	var out []string
	for _, sent := range sentences {
		for _, tok := range sent.Tokens {
			out = append(out, e.rewriteToken(tok, character, out))
		}
	}

	return finishClause(reassemble(out)), nil
}

// rewriteToken applies the per-token substitution rules; emitted holds
// the tokens produced so far
func (e *Extractor) rewriteToken(tok annotate.Token, character string, emitted []string) string {
	if character != "" && tok.Text == character {
		return "I"
	}

	lower := strings.ToLower(tok.Text)
	if replacement, ok := e.lexicon.Replacement(lower); ok {
		return replacement
	}

	// De-conjugate: "I survives" reads wrong after pronoun substitution
	if len(emitted) > 0 && tok.Pos == "VERB" && tok.Tag == "VBZ" {
		switch strings.ToLower(emitted[len(emitted)-1]) {
		case "i", "we":
			return tok.Lemma
		}
	}

	return tok.Text
}

// reassemble joins rewritten tokens, keeping punctuation tight against
// the neighboring words
func reassemble(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		switch {
		case i == 0:
		case noSpaceBefore[tok]:
		case noSpaceAfter[tokens[i-1]]:
		default:
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// finishClause capitalizes the clause and ensures it carries terminal
// punctuation, defaulting to a question mark
func finishClause(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]

	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "?"
	}

	return s
}
