package http

import (
	"net/http"

	"github.com/edututor/edututor/internal/analytics"
	"github.com/edututor/edututor/internal/rbac"
	"github.com/edututor/edututor/internal/results"
)

const dashboardWeakAreas = 5

type learnerAnalytics struct {
	Attempts        int                        `json:"attempts"`
	AveragePercent  float64                    `json:"average_percent"`
	SubjectAverages []analytics.SubjectAverage `json:"subject_averages"`
	TopWeakAreas    []analytics.WeakAreaCount  `json:"top_weak_areas"`
}

// GET /analytics/me
func MyAnalyticsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := store.Query(r.Context(), results.Filter{Email: rbac.SubjectFromContext(r.Context())})
		if err != nil {
			http.Error(w, "query results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, learnerAnalytics{
			Attempts:        len(rows),
			AveragePercent:  analytics.AveragePercent(rows),
			SubjectAverages: analytics.SubjectAverages(rows),
			TopWeakAreas:    analytics.TopWeakAreas(rows, dashboardWeakAreas),
		})
	}
}

type cohortAnalytics struct {
	Overview        analytics.Overview         `json:"overview"`
	SubjectAverages []analytics.SubjectAverage `json:"subject_averages"`
	TopWeakAreas    []analytics.WeakAreaCount  `json:"top_weak_areas"`
}

// GET /analytics/cohort?student=Alice&student=Bob&subject=Mathematics
// Teacher dashboard over all learners, optionally filtered by student
// display name and subject (repeatable query params).
func CohortAnalyticsHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rows, err := store.Query(r.Context(), results.Filter{
			StudentNames: q["student"],
			Subjects:     q["subject"],
		})
		if err != nil {
			http.Error(w, "query results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, cohortAnalytics{
			Overview:        analytics.Summarize(rows),
			SubjectAverages: analytics.SubjectAverages(rows),
			TopWeakAreas:    analytics.TopWeakAreas(rows, dashboardWeakAreas),
		})
	}
}
