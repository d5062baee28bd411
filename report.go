package sintaxis

import (
	"errors"
	"fmt"
	"log/slog"
)

// Policy selects how a batch of sentences reacts to a rejected sentence.
type Policy int

const (
	// AbortOnViolation stops the batch at the first rejected sentence.
	AbortOnViolation Policy = iota
	// ContinueOnViolation records the rejection and moves on.
	ContinueOnViolation
)

func (p Policy) String() string {
	switch p {
	case AbortOnViolation:
		return "abort"
	case ContinueOnViolation:
		return "continue"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses "abort" or "continue".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "abort", "":
		return AbortOnViolation, nil
	case "continue":
		return ContinueOnViolation, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", s)
	}
}

// SentenceResult is the outcome of validating one sentence.
type SentenceResult struct {
	// Sentence is the sentence with line breaks removed.
	Sentence string
	// Violation is nil when the sentence is valid.
	Violation *GrammarViolation
}

// Valid reports whether the sentence was accepted.
func (r SentenceResult) Valid() bool {
	return r.Violation == nil
}

// Report collects the results of a batch validation in input order.
type Report struct {
	Results []SentenceResult
}

// Valid returns the number of accepted sentences.
func (r Report) Valid() int {
	n := 0
	for _, res := range r.Results {
		if res.Valid() {
			n++
		}
	}
	return n
}

// Invalid returns the number of rejected sentences.
func (r Report) Invalid() int {
	return len(r.Results) - r.Valid()
}

// ValidateText splits text into sentences and validates them in order.
//
// Under AbortOnViolation the first rejected sentence ends the run: the
// report holds the sentences seen so far and the violation is returned
// as the error. Under ContinueOnViolation every sentence is validated
// and the error is nil.
func (a *Analyzer) ValidateText(text string) (Report, error) {
	return a.ValidateSentences(SplitSentences(text))
}

// ValidateSentences validates already split sentences in order under
// the analyzer's policy. Blank sentences are skipped.
func (a *Analyzer) ValidateSentences(sentences []string) (Report, error) {
	var report Report
	for _, sentence := range sentences {
		display := DisplaySentence(sentence)
		if len(splitWords(display)) == 0 {
			continue
		}

		err := a.Validate(sentence)
		if err == nil {
			a.logger.Info("sentence is valid", slog.String("sentence", display))
			report.Results = append(report.Results, SentenceResult{Sentence: display})
			continue
		}

		var gv *GrammarViolation
		if !errors.As(err, &gv) {
			return report, err
		}
		gv.Sentence = display
		report.Results = append(report.Results, SentenceResult{Sentence: display, Violation: gv})
		a.logger.Warn("syntax error",
			slog.String("sentence", display),
			slog.String("rule", gv.Nonterminal),
			slog.String("token", gv.Token),
		)
		if a.policy == AbortOnViolation {
			return report, gv
		}
	}
	return report, nil
}
