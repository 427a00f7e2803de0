package extract

import (
	"context"
	"testing"

	"github.com/pmorozov/inklet/internal/annotate"
)

func TestFirstPerson(t *testing.T) {
	parses := map[string][]annotate.Sentence{
		"he was safe": {{
			Text: "he was safe",
			Tokens: []annotate.Token{
				tok("he", "he", "PRON", "PRP", "nsubj", 1, 0),
				tok("was", "be", "AUX", "VBD", "ROOT", 1, 1),
				tok("safe", "safe", "ADJ", "JJ", "acomp", 1, 2),
			},
		}},
		"he runs fast": {{
			Text: "he runs fast",
			Tokens: []annotate.Token{
				tok("he", "he", "PRON", "PRP", "nsubj", 1, 0),
				tok("runs", "run", "VERB", "VBZ", "ROOT", 1, 1),
				tok("fast", "fast", "ADV", "RB", "advmod", 1, 2),
			},
		}},
		"they want to leave": {{
			Text: "they want to leave",
			Tokens: []annotate.Token{
				tok("they", "they", "PRON", "PRP", "nsubj", 1, 0),
				tok("want", "want", "VERB", "VBP", "ROOT", 1, 1),
				tok("to", "to", "PART", "TO", "aux", 3, 2),
				tok("leave", "leave", "VERB", "VB", "xcomp", 1, 3),
			},
		}},
		"Maria wants to leave": {{
			Text: "Maria wants to leave",
			Tokens: []annotate.Token{
				{Text: "Maria", Lemma: "maria", Pos: "PROPN", Dep: "nsubj", Head: 1, Index: 0, Ent: "PERSON"},
				tok("wants", "want", "VERB", "VBZ", "ROOT", 1, 1),
				tok("to", "to", "PART", "TO", "aux", 3, 2),
				tok("leave", "leave", "VERB", "VB", "xcomp", 1, 3),
			},
		}},
		"she's hungry": {{
			Text: "she's hungry",
			Tokens: []annotate.Token{
				tok("she's", "she's", "PRON", "PRP", "nsubj", 1, 0),
				tok("hungry", "hungry", "ADJ", "JJ", "acomp", 1, 1),
			},
		}},
		"he saw her with his keys": {{
			Text: "he saw her with his keys",
			Tokens: []annotate.Token{
				tok("he", "he", "PRON", "PRP", "nsubj", 1, 0),
				tok("saw", "see", "VERB", "VBD", "ROOT", 1, 1),
				tok("her", "she", "PRON", "PRP", "dobj", 1, 2),
				tok("with", "with", "ADP", "IN", "prep", 1, 3),
				tok("his", "his", "PRON", "PRP$", "poss", 5, 4),
				tok("keys", "key", "NOUN", "NNS", "pobj", 3, 5),
			},
		}},
	}

	e, _ := newTestExtractor(t, parses)

	tests := []struct {
		name      string
		clause    string
		character string
		want      string
	}{
		{"pronoun substitution", "he was safe", "", "I was safe?"},
		{"de-conjugation after I", "he runs fast", "", "I run fast?"},
		{"plural subject stays conjugated", "they want to leave", "", "We want to leave?"},
		{"named character", "Maria wants to leave", "Maria", "I want to leave?"},
		{"contraction", "she's hungry", "", "I'm hungry?"},
		{"object and possessive pronouns", "he saw her with his keys", "", "I saw me with my keys?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.firstPerson(context.Background(), tt.clause, tt.character)
			if err != nil {
				t.Fatalf("firstPerson failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("firstPerson(%q) = %q, want %q", tt.clause, got, tt.want)
			}
		})
	}
}

func TestReassemble(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"I", "was", "safe"}, "I was safe"},
		{[]string{"wait", ",", "what", "?"}, "wait, what?"},
		{[]string{"(", "almost", ")", "done", "."}, "(almost) done."},
		{[]string{`"`, "fine", `"`}, `"fine "` + `"`},
		{[]string{}, ""},
	}

	for _, tt := range tests {
		if got := reassemble(tt.tokens); got != tt.want {
			t.Errorf("reassemble(%v) = %q, want %q", tt.tokens, got, tt.want)
		}
	}
}

func TestFinishClause(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"i was safe", "I was safe?"},
		{"done!", "Done!"},
		{"all set.", "All set."},
		{"really?", "Really?"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := finishClause(tt.in); got != tt.want {
			t.Errorf("finishClause(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
