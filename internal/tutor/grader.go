package tutor

import (
	"fmt"
	"regexp"
	"strings"
)

var tokenRE = regexp.MustCompile(`[A-Za-z0-9]+`)

// Grade scores a submission against the generated items. It is deterministic:
// the same (items, answers) pair always yields the same result. Missing
// answers are treated as empty strings.
func Grade(items []QuizItem, answers Submission) GradeResult {
	res := GradeResult{
		Total:        len(items),
		FeedbackList: make([]string, 0, len(items)),
		WeakAreas:    []string{},
	}

	var weak []string
	for idx, item := range items {
		userAns := strings.TrimSpace(answers[fmt.Sprintf("q_%d", idx)])

		switch item.Type {
		case TypeMCQ:
			if userAns == strings.TrimSpace(item.Answer) {
				res.Score++
				res.FeedbackList = append(res.FeedbackList, fmt.Sprintf("Q%d: Correct.", idx+1))
			} else {
				res.FeedbackList = append(res.FeedbackList, fmt.Sprintf("Q%d: Incorrect. %s", idx+1, item.Explanation))
				weak = append(weak, item.TopicTag)
			}

		default: // short
			tokens := answerTokens(userAns)
			hits := 0
			var missed []string
			for _, kw := range item.Keywords {
				if _, ok := tokens[strings.ToLower(kw)]; ok {
					hits++
				} else {
					missed = append(missed, kw)
				}
			}
			if hits >= passThreshold(len(item.Keywords)) {
				res.Score++
				res.FeedbackList = append(res.FeedbackList, fmt.Sprintf("Q%d: Good. Covered key points.", idx+1))
			} else {
				mention := "more specifics"
				if len(missed) > 0 {
					mention = strings.Join(missed, ", ")
				}
				res.FeedbackList = append(res.FeedbackList, fmt.Sprintf("Q%d: Needs improvement. Mention: %s.", idx+1, mention))
				if len(missed) > 0 {
					weak = append(weak, missed...)
				} else {
					weak = append(weak, item.TopicTag)
				}
			}
		}
	}

	for _, w := range weak {
		if w != "" {
			res.WeakAreas = append(res.WeakAreas, w)
		}
	}
	return res
}

// passThreshold is the minimum keyword-hit count for a short answer:
// at least one, or half the keyword set rounded down.
func passThreshold(numKeywords int) int {
	t := numKeywords / 2
	if t < 1 {
		t = 1
	}
	return t
}

func answerTokens(s string) map[string]struct{} {
	toks := tokenRE.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}
