package annotate

import (
	"reflect"
	"testing"
)

// "Sarah wondered if he was safe." with heads pointing at token indices
func testSentence() Sentence {
	return Sentence{
		Text: "Sarah wondered if he was safe.",
		Tokens: []Token{
			{Text: "Sarah", Lemma: "sarah", Pos: "PROPN", Tag: "NNP", Dep: "nsubj", Head: 1, Index: 0, Ent: "PERSON"},
			{Text: "wondered", Lemma: "wonder", Pos: "VERB", Tag: "VBD", Dep: "ROOT", Head: 1, Index: 1},
			{Text: "if", Lemma: "if", Pos: "SCONJ", Tag: "IN", Dep: "mark", Head: 4, Index: 2},
			{Text: "he", Lemma: "he", Pos: "PRON", Tag: "PRP", Dep: "nsubj", Head: 4, Index: 3},
			{Text: "was", Lemma: "be", Pos: "AUX", Tag: "VBD", Dep: "advcl", Head: 1, Index: 4},
			{Text: "safe", Lemma: "safe", Pos: "ADJ", Tag: "JJ", Dep: "acomp", Head: 4, Index: 5},
			{Text: ".", Lemma: ".", Pos: "PUNCT", Tag: ".", Dep: "punct", Head: 1, Index: 6},
		},
	}
}

func TestSentence_Dependents(t *testing.T) {
	sent := testSentence()

	tests := []struct {
		index int
		want  []int
	}{
		{1, []int{0, 4, 6}}, // root is not its own dependent
		{4, []int{2, 3, 5}},
		{0, nil},
		{5, nil},
	}

	for _, tt := range tests {
		got := sent.Dependents(tt.index)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Dependents(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestSentence_Subtree(t *testing.T) {
	sent := testSentence()

	got := sent.Subtree(4)
	want := []string{"if", "he", "was", "safe"}
	if len(got) != len(want) {
		t.Fatalf("Subtree(4) returned %d tokens, want %d", len(got), len(want))
	}
	for i, tok := range got {
		if tok.Text != want[i] {
			t.Errorf("Subtree(4)[%d] = %q, want %q", i, tok.Text, want[i])
		}
	}

	// The root's subtree is the whole sentence, in order
	full := sent.Subtree(1)
	if len(full) != len(sent.Tokens) {
		t.Errorf("Subtree(root) returned %d tokens, want %d", len(full), len(sent.Tokens))
	}
	for i, tok := range full {
		if tok.Index != i {
			t.Errorf("Subtree(root) not sorted by index at %d: %+v", i, tok)
		}
	}

	// A leaf's subtree is just itself
	leaf := sent.Subtree(5)
	if len(leaf) != 1 || leaf[0].Text != "safe" {
		t.Errorf("Subtree(leaf) = %+v, want just the leaf token", leaf)
	}
}

func TestSentence_SubtreeOutOfRange(t *testing.T) {
	sent := testSentence()
	if got := sent.Subtree(-1); got != nil {
		t.Errorf("Subtree(-1) = %+v, want nil", got)
	}
	if got := sent.Subtree(99); got != nil {
		t.Errorf("Subtree(99) = %+v, want nil", got)
	}
}
