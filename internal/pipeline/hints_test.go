package pipeline

import (
	"strings"
	"testing"

	"github.com/pmorozov/inklet/internal/model"
)

func TestTailDirection(t *testing.T) {
	tests := []struct {
		typ   model.BubbleType
		index int
		want  string
	}{
		{model.BubbleThought, 0, "top"},
		{model.BubbleThought, 3, "top"},
		{model.BubbleShout, 0, "bottom"},
		{model.BubbleShout, 1, "bottom-right"},
		{model.BubbleSpeech, 0, "bottom"},
		{model.BubbleSpeech, 1, "bottom-left"},
		{model.BubbleSpeech, 2, "bottom-right"},
		{model.BubbleSpeech, 3, "top"},
		{model.BubbleSpeech, 4, "bottom"},
		{model.BubbleScene, 2, "bottom-right"},
	}

	for _, tt := range tests {
		if got := TailDirection(tt.typ, tt.index); got != tt.want {
			t.Errorf("TailDirection(%s, %d) = %q, want %q", tt.typ, tt.index, got, tt.want)
		}
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		typ    model.BubbleType
		length int
		want   int
	}{
		{model.BubbleShout, 5, 24},
		{model.BubbleShout, 200, 24},
		{model.BubbleSpeech, 10, 22},
		{model.BubbleSpeech, 30, 20},
		{model.BubbleSpeech, 80, 18},
		{model.BubbleThought, 19, 22},
	}

	for _, tt := range tests {
		if got := FontSize(tt.typ, tt.length); got != tt.want {
			t.Errorf("FontSize(%s, %d) = %d, want %d", tt.typ, tt.length, got, tt.want)
		}
	}
}

func TestFilterDialogues(t *testing.T) {
	mixed := []model.Bubble{
		{Type: model.BubbleScene, Text: "John said,"},
		{Type: model.BubbleSpeech, Text: "I am coming home."},
		{Type: model.BubbleScene, Text: "The door creaked open."},
		{Type: model.BubbleShout, Text: "STOP!"},
		{Type: model.BubbleThought, Text: "I was safe?"},
	}

	tests := []struct {
		name    string
		bubbles []model.Bubble
		max     int
		want    []string
	}{
		{
			name:    "scene dropped when dialogue fills the cap",
			bubbles: mixed,
			max:     2,
			want:    []string{"I am coming home.", "STOP!"},
		},
		{
			name:    "exact dialogue count keeps no scene",
			bubbles: mixed,
			max:     3,
			want:    []string{"I am coming home.", "STOP!", "I was safe?"},
		},
		{
			name:    "scene restored when dialogue falls short",
			bubbles: mixed,
			max:     4,
			want:    []string{"John said,", "I am coming home.", "The door creaked open.", "STOP!"},
		},
		{
			name:    "zero max keeps everything",
			bubbles: mixed,
			max:     0,
			want:    []string{"John said,", "I am coming home.", "The door creaked open.", "STOP!", "I was safe?"},
		},
		{
			name:    "empty input",
			bubbles: nil,
			max:     2,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDialogues(tt.bubbles, tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d bubbles, got %d: %+v", len(tt.want), len(got), got)
			}
			for i, b := range got {
				if b.Text != tt.want[i] {
					t.Errorf("bubble %d: expected %q, got %q", i, tt.want[i], b.Text)
				}
			}
		})
	}
}

func TestHintsFor(t *testing.T) {
	bubbles := []model.Bubble{
		{Type: model.BubbleShout, Text: "STOP!"},
		{Type: model.BubbleScene, Text: strings.Repeat("x", 60)},
		{Type: model.BubbleThought, Text: "I was safe?"},
	}

	hints := hintsFor(bubbles)
	if len(hints) != len(bubbles) {
		t.Fatalf("expected %d hints, got %d", len(bubbles), len(hints))
	}

	if hints[0].TailDirection != "bottom" || hints[0].FontSize != 24 {
		t.Errorf("unexpected shout hint: %+v", hints[0])
	}
	if hints[1].TailDirection != "bottom-left" || hints[1].FontSize != 18 {
		t.Errorf("unexpected scene hint: %+v", hints[1])
	}
	if hints[2].TailDirection != "top" || hints[2].FontSize != 22 {
		t.Errorf("unexpected thought hint: %+v", hints[2])
	}
}
