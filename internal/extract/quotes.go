package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pmorozov/inklet/internal/model"
)

// contextWindow is the number of bytes of surrounding text kept on each
// side of a quote for classification and speaker attribution
const contextWindow = 100

// Quote delimiter patterns, applied in fixed priority order. The generic
// pattern pairs each opening character with its same or matching closer;
// the specific patterns catch each style individually. Matches are merged
// by start offset, first pattern wins.
var quotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`["\x{201C}\x{201D}](.+?)["\x{201C}\x{201D}]|['\x{2018}\x{2019}](.+?)['\x{2018}\x{2019}]`),
	regexp.MustCompile(`"(.+?)"`),
	regexp.MustCompile(`'(.+?)'`),
	regexp.MustCompile(`\x{201C}(.+?)\x{201D}`),
	regexp.MustCompile(`\x{2018}(.+?)\x{2019}`),
}

// findQuotes locates all quoted spans in text, sorted by start offset,
// with at most one span per distinct start. Empty and whitespace-only
// quotes are discarded.
func findQuotes(text string) []model.QuoteSpan {
	var candidates []model.QuoteSpan

	for _, pattern := range quotePatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			quoted, ok := firstGroup(text, m)
			if !ok || strings.TrimSpace(quoted) == "" {
				continue
			}

			start, end := m[0], m[1]
			candidates = append(candidates, model.QuoteSpan{
				Text:   quoted,
				Start:  start,
				End:    end,
				Before: clipBefore(text, start),
				After:  clipAfter(text, end),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start < candidates[j].Start
	})

	var spans []model.QuoteSpan
	seen := make(map[int]bool)
	for _, c := range candidates {
		if seen[c.Start] {
			continue
		}
		seen[c.Start] = true
		spans = append(spans, c)
	}

	return spans
}

// firstGroup returns the first non-empty capture group of a match
func firstGroup(text string, m []int) (string, bool) {
	for g := 1; 2*g+1 < len(m); g++ {
		lo, hi := m[2*g], m[2*g+1]
		if lo >= 0 {
			return text[lo:hi], true
		}
	}
	return "", false
}

// clipBefore takes up to contextWindow bytes preceding offset, advanced
// to a rune boundary so the window never starts mid-character
func clipBefore(text string, offset int) string {
	lo := offset - contextWindow
	if lo < 0 {
		lo = 0
	}
	for lo < offset && !utf8.RuneStart(text[lo]) {
		lo++
	}
	return text[lo:offset]
}

// clipAfter takes up to contextWindow bytes following offset, backed off
// to a rune boundary
func clipAfter(text string, offset int) string {
	hi := offset + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	for hi > offset && hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi--
	}
	return text[offset:hi]
}

// residualSegments returns the stripped maximal text segments not covered
// by any span, left to right. Segments are computed against the union of
// span ranges, so overlapping spans never leak characters back into the
// residual stage.
func residualSegments(text string, spans []model.QuoteSpan) []string {
	if len(spans) == 0 {
		if seg := strings.TrimSpace(text); seg != "" {
			return []string{seg}
		}
		return nil
	}

	var segments []string
	lastEnd := 0

	for _, span := range spans {
		if span.Start > lastEnd {
			if seg := strings.TrimSpace(text[lastEnd:span.Start]); seg != "" {
				segments = append(segments, seg)
			}
		}
		if span.End > lastEnd {
			lastEnd = span.End
		}
	}

	if lastEnd < len(text) {
		if seg := strings.TrimSpace(text[lastEnd:]); seg != "" {
			segments = append(segments, seg)
		}
	}

	return segments
}
