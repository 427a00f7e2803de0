package extract

import (
	"fmt"
	"sort"
)

// Lexicon holds the fixed verb-class tables and the pronoun map.
// Constructed once at startup and never mutated afterwards.
type Lexicon struct {
	speech  map[string]bool
	thought map[string]bool
	shout   map[string]bool

	// pronouns maps lower-cased third-person forms (including
	// contractions) to their first-person replacements
	pronouns map[string]string
}

var speechVerbs = []string{
	"say", "said", "says", "ask", "asked", "asks", "reply", "replied",
	"replies", "answer", "answered", "answers", "whisper", "whispered",
	"whispers", "mutter", "muttered", "mutters", "state", "stated",
	"states", "mention", "mentioned", "mentions", "tell", "told", "tells",
	"speak", "spoke", "speaks", "respond", "responded", "responds",
	"remark", "remarked", "remarks", "announce", "announced", "announces",
	"declare", "declared", "declares", "call", "called", "calls",
	"add", "added", "adds", "continue", "continued", "continues",
}

var thoughtVerbs = []string{
	"think", "thought", "thinks", "wonder", "wondered", "wonders",
	"ponder", "pondered", "ponders", "consider", "considered", "considers",
	"realize", "realized", "realizes", "figure", "figured", "figures",
	"imagine", "imagined", "imagines", "believe", "believed", "believes",
	"feel", "felt", "feels", "remember", "remembered", "remembers",
	"recall", "recalled", "recalls", "muse", "mused", "muses",
	"reflect", "reflected", "reflects", "reckon", "reckoned", "reckons",
}

var shoutVerbs = []string{
	"shout", "shouted", "shouts", "yell", "yelled", "yells",
	"scream", "screamed", "screams", "cry", "cried", "cries",
	"holler", "hollered", "hollers", "bellow", "bellowed", "bellows",
	"roar", "roared", "roars", "exclaim", "exclaimed", "exclaims",
	"shriek", "shrieked", "shrieks",
}

var pronounReplacements = map[string]string{
	"he": "I", "she": "I",
	"him": "me", "her": "me",
	"his": "my", "hers": "mine",
	"himself": "myself", "herself": "myself",
	"they": "we", "them": "us",
	"their": "our", "theirs": "ours",
	"they'd": "I'd", "he'd": "I'd", "she'd": "I'd",
	"they'll": "I'll", "he'll": "I'll", "she'll": "I'll",
	"they're": "I'm", "he's": "I'm", "she's": "I'm",
}

// NewLexicon builds the verb-class tables and pronoun map, failing if
// any verb form appears in more than one class
func NewLexicon() (*Lexicon, error) {
	lex := &Lexicon{
		speech:   toSet(speechVerbs),
		thought:  toSet(thoughtVerbs),
		shout:    toSet(shoutVerbs),
		pronouns: pronounReplacements,
	}

	if err := lex.validate(); err != nil {
		return nil, err
	}

	return lex, nil
}

// validate checks that the three verb classes are mutually disjoint
func (l *Lexicon) validate() error {
	var overlaps []string

	for v := range l.speech {
		if l.thought[v] || l.shout[v] {
			overlaps = append(overlaps, v)
		}
	}
	for v := range l.thought {
		if l.shout[v] {
			overlaps = append(overlaps, v)
		}
	}

	if len(overlaps) > 0 {
		sort.Strings(overlaps)
		return fmt.Errorf("verb classes are not disjoint: %v", overlaps)
	}

	return nil
}

// Classify returns the bubble class of a verb form, testing the classes
// in the order shout, thought, speech
func (l *Lexicon) Classify(lemma string) (verbClass, bool) {
	switch {
	case l.shout[lemma]:
		return classShout, true
	case l.thought[lemma]:
		return classThought, true
	case l.speech[lemma]:
		return classSpeech, true
	}
	return classNone, false
}

// Replacement returns the first-person form of a pronoun, if mapped
func (l *Lexicon) Replacement(lower string) (string, bool) {
	r, ok := l.pronouns[lower]
	return r, ok
}

// ShoutForms returns the shout verb forms for context matching
func (l *Lexicon) ShoutForms() map[string]bool { return l.shout }

// ThoughtForms returns the thought verb forms for context matching
func (l *Lexicon) ThoughtForms() map[string]bool { return l.thought }

type verbClass int

const (
	classNone verbClass = iota
	classSpeech
	classThought
	classShout
)

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
