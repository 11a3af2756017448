package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/edututor/edututor/internal/rbac"
	"github.com/edututor/edututor/internal/results"
)

// GET /results?email=...&limit=50
// Students always get their own rows; teachers may pass email= to view any
// learner's history, or omit it for the whole cohort.
func ListResultsHandler(store results.Store, checker *rbac.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := rbac.RoleFromContext(r.Context())
		sub := rbac.SubjectFromContext(r.Context())

		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if !checker.Has(role, "results:view-all") {
			email = sub
		}

		rows, err := store.Query(r.Context(), results.Filter{
			Email: email,
			Limit: parseIntDefault(r.URL.Query().Get("limit"), 0),
		})
		if err != nil {
			http.Error(w, "query results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, rows)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
