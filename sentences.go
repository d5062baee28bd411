package sintaxis

import (
	"fmt"
	"os"
	"strings"
)

// sentenceDelimiter separates sentences in a text.
const sentenceDelimiter = "."

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// SplitSentences splits text on periods and drops blank segments. The
// returned sentences keep their inner whitespace; the scanner treats
// line breaks as ordinary whitespace.
func SplitSentences(text string) []string {
	var out []string
	for _, seg := range strings.Split(text, sentenceDelimiter) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// DisplaySentence returns sentence with carriage returns and line feeds
// removed, as it is shown in reports.
func DisplaySentence(sentence string) string {
	return lineBreaks.Replace(sentence)
}

// ReadSentences reads the file at path and splits it into sentences.
func ReadSentences(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sentences %s: %w", path, err)
	}
	return SplitSentences(string(data)), nil
}
