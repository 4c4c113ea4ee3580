// Package scoring evaluates free-text interview answers against the expected
// keywords of a question. Evaluation is pure and deterministic: the same
// question and answer always produce the same score and feedback.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Dhanushraagav/ai-interview-platform/internal/model"
)

// MaxScore is the upper bound of every score produced by Evaluate.
const MaxScore = 10.0

// Weights of the three scoring dimensions. They sum to MaxScore.
const (
	keywordWeight   = 7.0
	lengthWeight    = 2.0
	relevanceWeight = 1.0

	// An answer of this many words earns the full length sub-score.
	optimalWordCount = 50

	// Word overlap with the question saturates at this many shared tokens.
	relevanceSaturation = 10
)

const emptyAnswerFeedback = "Please provide an answer to the question."

// Evaluate scores an answer on a 0..10 scale and returns feedback text.
// The composite weighs keyword coverage (7.0), answer length (2.0) and
// topical overlap with the question (1.0). It never fails: degenerate input
// (empty or whitespace-only answer) yields score 0 and a fixed prompt.
func Evaluate(question model.Question, answer string) (float64, string) {
	if strings.TrimSpace(answer) == "" {
		return 0.0, emptyAnswerFeedback
	}

	answerLower := strings.ToLower(answer)

	matched := make([]string, 0, len(question.Keywords))
	for _, kw := range question.Keywords {
		if strings.Contains(answerLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	totalKeywords := len(question.Keywords)

	var keywordScore float64
	if totalKeywords > 0 {
		keywordScore = float64(len(matched)) / float64(totalKeywords) * keywordWeight
	}

	wordCount := len(strings.Fields(answer))
	lengthScore := math.Min(float64(wordCount)/optimalWordCount, 1.0) * lengthWeight

	overlap := wordOverlap(question.Text, answer)
	relevanceScore := math.Min(float64(overlap)/relevanceSaturation, 1.0) * relevanceWeight

	total := keywordScore + lengthScore + relevanceScore
	total = math.Min(total, MaxScore)
	total = math.Round(total*100) / 100

	feedback := buildFeedback(total, matched, question.Keywords, wordCount)
	return total, feedback
}

// wordOverlap counts distinct whitespace-delimited tokens shared by both
// texts, compared lowercase. Punctuation is deliberately not stripped.
func wordOverlap(question, answer string) int {
	questionWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(question)) {
		questionWords[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	overlap := 0
	for _, w := range strings.Fields(strings.ToLower(answer)) {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, ok := questionWords[w]; ok {
			overlap++
		}
	}
	return overlap
}

// buildFeedback assembles the feedback string in a fixed fragment order:
// tier banner, keyword coverage, missing-keyword suggestion, length remark,
// closing encouragement.
func buildFeedback(score float64, matched, keywords []string, wordCount int) string {
	var b strings.Builder

	switch {
	case score >= 9.0:
		b.WriteString("🌟 Excellent answer! ")
	case score >= 7.5:
		b.WriteString("✅ Very good answer! ")
	case score >= 6.0:
		b.WriteString("👍 Good answer. ")
	case score >= 4.0:
		b.WriteString("⚠️ Fair answer. ")
	default:
		b.WriteString("❌ Your answer needs improvement. ")
	}

	var coverage float64
	if len(keywords) > 0 {
		coverage = float64(len(matched)) / float64(len(keywords)) * 100
	}
	fmt.Fprintf(&b, "You covered %d/%d (%.0f%%) key concepts. ", len(matched), len(keywords), coverage)

	missing := missingKeywords(matched, keywords)
	if len(missing) > 0 && score < 8.0 {
		if len(missing) > 3 {
			missing = missing[:3]
		}
		fmt.Fprintf(&b, "Consider mentioning: %s. ", strings.Join(missing, ", "))
	}

	if wordCount < 20 {
		b.WriteString("Try to provide more detail in your answer. ")
	} else if wordCount > 100 {
		b.WriteString("Your answer is comprehensive. ")
	}

	switch {
	case score >= 7.0:
		b.WriteString("Keep up the great work! ")
	case score >= 5.0:
		b.WriteString("You're on the right track. ")
	default:
		b.WriteString("Review the core concepts and try to be more specific. ")
	}

	return strings.TrimSpace(b.String())
}

// missingKeywords returns the keywords absent from matched, preserving their
// original order.
func missingKeywords(matched, keywords []string) []string {
	matchedSet := make(map[string]struct{}, len(matched))
	for _, kw := range matched {
		matchedSet[kw] = struct{}{}
	}

	var missing []string
	for _, kw := range keywords {
		if _, ok := matchedSet[kw]; !ok {
			missing = append(missing, kw)
		}
	}
	return missing
}
