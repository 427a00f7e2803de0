package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmorozov/inklet/internal/model"
)

// Renderer writes extraction reports in the supported formats
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the full report as indented JSON to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes a readable Markdown report to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Subject)
	if report.SourceURL != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", report.SourceURL)
	}
	fmt.Fprintf(&b, "Annotator: %s · Extracted: %s\n\n", report.Annotator, report.ExtractedAt.Format("2006-01-02 15:04:05 UTC"))

	for i, para := range report.Paragraphs {
		fmt.Fprintf(&b, "## Paragraph %d\n\n", i+1)
		fmt.Fprintf(&b, "> %s\n\n", para.Text)
		for _, bubble := range para.Bubbles {
			if bubble.Character != "" {
				fmt.Fprintf(&b, "- **%s** (%s): %s\n", bubble.Type, bubble.Character, bubble.Text)
			} else {
				fmt.Fprintf(&b, "- **%s**: %s\n", bubble.Type, bubble.Text)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\n%d paragraphs · %d speech · %d thought · %d shout · %d scene\n",
		report.Stats.Paragraphs, report.Stats.Speech, report.Stats.Thought, report.Stats.Shout, report.Stats.Scene)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderText writes the compact bubble listing to w, one bubble per line
func (r *Renderer) RenderText(report *model.Report, w io.Writer) error {
	for _, para := range report.Paragraphs {
		for _, bubble := range para.Bubbles {
			var err error
			if bubble.Character != "" {
				_, err = fmt.Fprintf(w, "[%s] %s: %s\n", bubble.Type, bubble.Character, bubble.Text)
			} else {
				_, err = fmt.Fprintf(w, "[%s] %s\n", bubble.Type, bubble.Text)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
