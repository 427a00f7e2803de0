package model

// BubbleType classifies a unit of extracted dialogue or narration
type BubbleType string

const (
	BubbleSpeech  BubbleType = "speech"  // Spoken dialogue
	BubbleThought BubbleType = "thought" // Internal monologue
	BubbleShout   BubbleType = "shout"   // Yelled/exclaimed dialogue
	BubbleScene   BubbleType = "scene"   // Plain narration, no dialogue
)

// Valid reports whether t is one of the four known bubble types
func (t BubbleType) Valid() bool {
	switch t {
	case BubbleSpeech, BubbleThought, BubbleShout, BubbleScene:
		return true
	}
	return false
}

// Bubble represents one classified unit of dialogue or narration
// extracted from prose, destined for rendering as a comic balloon
type Bubble struct {
	Type      BubbleType `json:"bubble_type"`           // speech, thought, shout, scene
	Text      string     `json:"text"`                  // Literal quote, rewritten clause, or full sentence
	Character string     `json:"character,omitempty"`   // Attributed speaker name, empty when unknown
	Source    string     `json:"source_text,omitempty"` // Pre-rewrite text, retained for ordering lookups
}

// QuoteSpan is a quoted region of the original paragraph with its
// surrounding context windows
type QuoteSpan struct {
	Text   string `json:"quoted_text"`  // Content between the quote delimiters
	Start  int    `json:"start_offset"` // Byte offset of the opening delimiter
	End    int    `json:"end_offset"`   // Byte offset just past the closing delimiter
	Before string `json:"-"`            // Up to 100 bytes of text preceding the span
	After  string `json:"-"`            // Up to 100 bytes of text following the span
}
