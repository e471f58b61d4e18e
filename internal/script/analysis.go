// Package script provides plain-text statistics and reflow helpers for the
// narration script editor.
package script

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// readCharsPerMinute is the narration speed assumed for read-time estimates.
const readCharsPerMinute = 400

// Composition breaks a script down by character class.
type Composition struct {
	Hangul  int
	English int
	Digits  int
	Spaces  int
	Symbols int
	Total   int
}

// WordCount is one ranked entry of the frequency tables.
type WordCount struct {
	Word  string
	Count int
}

// Analysis is the full set of script statistics. All fields are concrete;
// consumers get a fixed record, not an open-ended map.
type Analysis struct {
	CharCount         int
	CharCountNoSpaces int
	WordCount         int
	SentenceCount     int
	LineCount         int
	ParagraphCount    int
	UniqueWordCount   int
	ReadTimeSeconds   int
	Composition       Composition
	TopWords          []WordCount
	TopBigrams        []WordCount
	TopTrigrams       []WordCount
}

var (
	sentenceEndRegex  = regexp.MustCompile(`[.!?]+(\s|$)`)
	paragraphSplitter = regexp.MustCompile(`\n\s*\n`)
	wordStripRegex    = regexp.MustCompile(`[^\w\sㄱ-ㅎㅏ-ㅣ가-힣]`)
)

// Analyze computes the statistics record for a script. An empty or
// whitespace-only script yields the zero record.
func Analyze(text string) Analysis {
	if strings.TrimSpace(text) == "" {
		return Analysis{}
	}

	runes := []rune(text)
	charCount := len(runes)

	var comp Composition
	charCountNoSpaces := 0
	for _, r := range runes {
		switch {
		case r >= '가' && r <= '힣':
			comp.Hangul++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			comp.English++
		case r >= '0' && r <= '9':
			comp.Digits++
		case unicode.IsSpace(r):
			comp.Spaces++
		default:
			comp.Symbols++
		}
		if !unicode.IsSpace(r) {
			charCountNoSpaces++
		}
	}
	comp.Total = charCount

	words := strings.Fields(text)
	wordCount := len(words)

	sentenceCount := len(sentenceEndRegex.FindAllString(text, -1))
	if sentenceCount == 0 && wordCount > 0 {
		sentenceCount = 1
	}

	lineCount := len(strings.Split(text, "\n"))

	paragraphCount := 0
	for _, p := range paragraphSplitter.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphCount++
		}
	}

	normalized := normalizeWords(text)
	unique := make(map[string]struct{}, len(normalized))
	for _, w := range normalized {
		unique[w] = struct{}{}
	}

	readTime := 0
	if charCountNoSpaces > 0 {
		readTime = int(float64(charCountNoSpaces)/(readCharsPerMinute/60.0) + 0.5)
	}

	return Analysis{
		CharCount:         charCount,
		CharCountNoSpaces: charCountNoSpaces,
		WordCount:         wordCount,
		SentenceCount:     sentenceCount,
		LineCount:         lineCount,
		ParagraphCount:    paragraphCount,
		UniqueWordCount:   len(unique),
		ReadTimeSeconds:   readTime,
		Composition:       comp,
		TopWords:          topFrequencies(normalized, 5),
		TopBigrams:        topFrequencies(ngrams(normalized, 2), 5),
		TopTrigrams:       topFrequencies(ngrams(normalized, 3), 5),
	}
}

// EstimateSpeechSeconds approximates how long a line takes to narrate,
// at a quarter second per non-space character.
func EstimateSpeechSeconds(text string) float64 {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return float64(count) * 0.25
}

func normalizeWords(text string) []string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	stripped := wordStripRegex.ReplaceAllString(lowered, "")
	return strings.Fields(stripped)
}

func ngrams(words []string, n int) []string {
	if len(words) < n {
		return nil
	}
	out := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		out = append(out, strings.Join(words[i:i+n], " "))
	}
	return out
}

func topFrequencies(items []string, limit int) []WordCount {
	freq := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if freq[item] == 0 {
			order = append(order, item)
		}
		freq[item]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	out := make([]WordCount, len(order))
	for i, word := range order {
		out[i] = WordCount{Word: word, Count: freq[word]}
	}
	return out
}
