// Package analytics computes dashboard numbers from the result store.
// Everything here is read-only over a snapshot of rows; record order is the
// store's insertion order, which aggregation relies on for tie-breaking.
package analytics

import (
	"sort"

	"github.com/edututor/edututor/internal/results"
)

// WeakAreaCount is one weak-area frequency entry.
type WeakAreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// SubjectAverage is one per-subject percentage entry.
type SubjectAverage struct {
	Subject string  `json:"subject"`
	Percent float64 `json:"percent"`
}

// Overview summarizes a row selection for the cohort dashboard.
type Overview struct {
	Attempts       int     `json:"attempts"`
	ActiveStudents int     `json:"active_students"`
	AveragePercent float64 `json:"average_percent"`
	RecentPercent  float64 `json:"recent_percent"`
}

// AveragePercent is 100 * sum(score) / sum(total) over the rows,
// 0 when sum(total) is 0.
func AveragePercent(rows []results.Record) float64 {
	score, total := 0, 0
	for _, r := range rows {
		score += r.Score
		total += r.Total
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(score) / float64(total)
}

// SubjectAverages groups rows by subject and applies the same ratio formula
// per group. Subjects appear in first-encountered order.
func SubjectAverages(rows []results.Record) []SubjectAverage {
	type sums struct{ score, total int }
	bySubject := map[string]*sums{}
	var order []string
	for _, r := range rows {
		s, ok := bySubject[r.Subject]
		if !ok {
			s = &sums{}
			bySubject[r.Subject] = s
			order = append(order, r.Subject)
		}
		s.score += r.Score
		s.total += r.Total
	}

	out := make([]SubjectAverage, 0, len(order))
	for _, subj := range order {
		s := bySubject[subj]
		pct := 0.0
		if s.total > 0 {
			pct = 100 * float64(s.score) / float64(s.total)
		}
		out = append(out, SubjectAverage{Subject: subj, Percent: pct})
	}
	return out
}

// TopWeakAreas flattens each row's weak-area field and counts occurrences,
// returning the top n by descending count. Ties keep first-encountered
// order. Tags are compared exactly as stored: case-sensitive, no
// canonicalization.
func TopWeakAreas(rows []results.Record, n int) []WeakAreaCount {
	counts := map[string]int{}
	first := map[string]int{}
	seq := 0
	for _, r := range rows {
		for _, area := range r.WeakAreaList() {
			if _, seen := counts[area]; !seen {
				first[area] = seq
				seq++
			}
			counts[area]++
		}
	}

	out := make([]WeakAreaCount, 0, len(counts))
	for area, c := range counts {
		out = append(out, WeakAreaCount{Area: area, Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return first[out[i].Area] < first[out[j].Area]
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summarize computes the cohort overview numbers: attempt count, distinct
// learner count, cohort average, and the most recent attempt's percentage.
func Summarize(rows []results.Record) Overview {
	o := Overview{
		Attempts:       len(rows),
		AveragePercent: AveragePercent(rows),
	}
	emails := map[string]struct{}{}
	for _, r := range rows {
		emails[r.Email] = struct{}{}
	}
	o.ActiveStudents = len(emails)
	if len(rows) > 0 {
		o.RecentPercent = rows[len(rows)-1].Percent()
	}
	return o
}
