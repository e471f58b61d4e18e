package script

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceChunkRegex = regexp.MustCompile(`[^.!?]+[.!?]*\s*|[^.!?]+$`)

// SplitIntoChunks breaks a script into chunks no longer than maxLength runes,
// preferring sentence boundaries. Sentences that still exceed the limit are
// split on word boundaries. A non-positive maxLength returns the text as-is.
func SplitIntoChunks(text string, maxLength int) []string {
	if maxLength <= 0 {
		return []string{text}
	}

	var chunks []string
	for _, sentence := range sentenceChunkRegex.FindAllString(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if utf8.RuneCountInString(sentence) <= maxLength {
			chunks = append(chunks, sentence)
			continue
		}

		var current string
		for _, word := range strings.Split(sentence, " ") {
			switch {
			case current == "":
				current = word
			case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= maxLength:
				current += " " + word
			default:
				chunks = append(chunks, current)
				current = word
			}
		}
		if current != "" {
			chunks = append(chunks, current)
		}
	}
	return chunks
}

// AutoFormatOptions selects which punctuation marks force a line break
// during reflow.
type AutoFormatOptions struct {
	Period      bool
	Question    bool
	Exclamation bool
	Comma       bool
}

// AutoFormat joins the given lines into one text and reflows it so each
// selected punctuation mark ends a line. With no marks selected the input
// comes back unchanged.
func AutoFormat(lines []string, opts AutoFormatOptions) []string {
	var triggers []string
	if opts.Period {
		triggers = append(triggers, `\.`)
	}
	if opts.Question {
		triggers = append(triggers, `\?`)
	}
	if opts.Exclamation {
		triggers = append(triggers, `!`)
	}
	if opts.Comma {
		triggers = append(triggers, `,`)
	}
	if len(triggers) == 0 {
		return lines
	}

	full := strings.Join(lines, " ")
	pattern := "([" + strings.Join(triggers, "") + "])"
	splitRegex := regexp.MustCompile(pattern + `\s+`)
	endRegex := regexp.MustCompile(pattern + `$`)

	reflowed := splitRegex.ReplaceAllString(full, "$1\n")
	reflowed = endRegex.ReplaceAllString(reflowed, "$1\n")

	var out []string
	for _, line := range strings.Split(reflowed, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
