package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/edututor/edututor/internal/rbac"
	"github.com/edututor/edututor/internal/report"
	"github.com/edututor/edututor/internal/results"
)

// GET /reports/me.pdf
func MyReportHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := rbac.SubjectFromContext(r.Context())
		name := rbac.NameFromContext(r.Context())
		serveReport(w, r, store, email, name)
	}
}

// GET /reports/{email}.pdf  (teacher-only, enforced by the router)
func StudentReportHandler(store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSuffix(chi.URLParam(r, "email"), ".pdf")
		if email == "" {
			http.Error(w, "email required", http.StatusBadRequest)
			return
		}
		serveReport(w, r, store, email, "")
	}
}

func serveReport(w http.ResponseWriter, r *http.Request, store results.Store, email, name string) {
	rows, err := store.Query(r.Context(), results.Filter{Email: email})
	if err != nil {
		http.Error(w, "query results: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if name == "" {
		name = email
		if len(rows) > 0 {
			name = rows[0].StudentName
		}
	}

	pdf, err := report.Export(rows, name)
	if err != nil {
		http.Error(w, "export report: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="edututor_report.pdf"`)
	_, _ = w.Write(pdf)
}
