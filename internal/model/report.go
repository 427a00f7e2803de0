package model

import "time"

// Report represents the complete extraction result for one input
type Report struct {
	Subject     string    `json:"subject"`              // Input name (URL subject, file name, or "paragraph")
	SourceURL   string    `json:"source_url,omitempty"` // URL that was fetched, if any
	ExtractedAt time.Time `json:"extracted_at"`         // When the extraction occurred
	FetchMeta   FetchMeta `json:"fetch_meta,omitempty"` // HTTP metadata when input was a URL

	Annotator  string      `json:"annotator"`  // Annotation engine that was used
	Paragraphs []Paragraph `json:"paragraphs"` // Per-paragraph results, in input order
	Stats      Stats       `json:"stats"`      // Aggregate counts
}

// Paragraph holds the ordered bubble sequence for one paragraph
type Paragraph struct {
	Text    string   `json:"text"`    // Original paragraph text
	Bubbles []Bubble `json:"bubbles"` // Bubbles in original textual order
	Hints   []Hint   `json:"hints"`   // Renderer-facing hints, one per bubble
}

// Hint carries rendering suggestions for a bubble; the placement and
// compositing layers downstream are free to ignore them
type Hint struct {
	TailDirection string `json:"tail_direction"`
	FontSize      int    `json:"font_size"`
}

// FetchMeta contains HTTP metadata from fetching the source
type FetchMeta struct {
	StatusCode   int    `json:"status_code,omitempty"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// Stats summarizes the extraction across all paragraphs
type Stats struct {
	Paragraphs int `json:"paragraphs"`
	Speech     int `json:"speech"`
	Thought    int `json:"thought"`
	Shout      int `json:"shout"`
	Scene      int `json:"scene"`
}

// Add updates the counters for one extracted bubble
func (s *Stats) Add(t BubbleType) {
	switch t {
	case BubbleSpeech:
		s.Speech++
	case BubbleThought:
		s.Thought++
	case BubbleShout:
		s.Shout++
	case BubbleScene:
		s.Scene++
	}
}
