package pipeline

import "github.com/pmorozov/inklet/internal/model"

// Balloon tail directions cycled for speech and scene bubbles
var tailCycle = []string{"bottom", "bottom-left", "bottom-right", "top"}

// TailDirection suggests where a bubble's tail should point, based on
// bubble type and position within the paragraph
func TailDirection(t model.BubbleType, index int) string {
	switch t {
	case model.BubbleThought:
		return "top"
	case model.BubbleShout:
		if index%2 == 0 {
			return "bottom"
		}
		return "bottom-right"
	default:
		return tailCycle[index%len(tailCycle)]
	}
}

// FontSize suggests a font size from bubble type and text length
func FontSize(t model.BubbleType, textLength int) int {
	switch {
	case t == model.BubbleShout:
		return 24
	case textLength < 20:
		return 22
	case textLength < 50:
		return 20
	default:
		return 18
	}
}

// FilterDialogues trims a bubble sequence for a panel with room for at
// most max bubbles. Scene narration is dropped first; when that leaves
// fewer than max bubbles the full sequence is used instead, so panels
// short on dialogue still get filled. A non-positive max disables
// filtering.
func FilterDialogues(bubbles []model.Bubble, max int) []model.Bubble {
	if max <= 0 {
		return bubbles
	}

	var dialogues []model.Bubble
	for _, b := range bubbles {
		if b.Type != model.BubbleScene {
			dialogues = append(dialogues, b)
		}
	}

	if len(dialogues) < max {
		dialogues = bubbles
	}

	if len(dialogues) > max {
		dialogues = dialogues[:max]
	}
	return dialogues
}

// hintsFor builds the renderer hints for a bubble sequence
func hintsFor(bubbles []model.Bubble) []model.Hint {
	hints := make([]model.Hint, len(bubbles))
	for i, b := range bubbles {
		hints[i] = model.Hint{
			TailDirection: TailDirection(b.Type, i),
			FontSize:      FontSize(b.Type, len(b.Text)),
		}
	}
	return hints
}
