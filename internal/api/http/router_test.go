package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "github.com/edututor/edututor/internal/api/http"
	"github.com/edututor/edututor/internal/auth"
	"github.com/edututor/edututor/internal/db"
	"github.com/edututor/edututor/internal/results"
	"github.com/edututor/edututor/internal/tutor"
)

var dsnSeq int

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dsnSeq++
	dsn := fmt.Sprintf("file:gateway_test_%d.db?mode=memory&cache=shared", dsnSeq)
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })

	r := api.NewRouter(api.Deps{
		AuthSvc:     auth.NewAuthService("test-secret"),
		Users:       auth.NewUserStore(dbh),
		Generator:   tutor.NewGenerator(nil),
		Quizzes:     tutor.NewQuizCache(time.Minute),
		Results:     results.NewSQLStore(dbh),
		CORSOrigins: []string{"http://localhost:3000"},
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func register(t *testing.T, srv *httptest.Server, name, email, password, role string) {
	t.Helper()
	resp, body := doJSON(t, "POST", srv.URL+"/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password, "role": role,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d: %s", email, resp.StatusCode, body)
	}
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()
	resp, body := doJSON(t, "POST", srv.URL+"/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d: %s", email, resp.StatusCode, body)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.AccessToken == "" {
		t.Fatalf("login response: %s", body)
	}
	return out.AccessToken
}

func TestGateway_RegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "Student Demo", "student@example.com", "student123", "student")

	// duplicate email
	resp, _ := doJSON(t, "POST", srv.URL+"/auth/register", "", map[string]string{
		"name": "Other", "email": "student@example.com", "password": "x", "role": "student",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", resp.StatusCode)
	}

	// invalid role
	resp, _ = doJSON(t, "POST", srv.URL+"/auth/register", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "x", "role": "admin",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid role status = %d, want 400", resp.StatusCode)
	}

	login(t, srv, "student@example.com", "student123")

	resp, _ = doJSON(t, "POST", srv.URL+"/auth/login", "", map[string]string{
		"email": "student@example.com", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", resp.StatusCode)
	}
}

func TestGateway_ChangePassword(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "S", "s@x.com", "pw", "student")
	tok := login(t, srv, "s@x.com", "pw")

	resp, _ := doJSON(t, "POST", srv.URL+"/auth/password", tok, map[string]string{
		"old_password": "nope", "new_password": "pw2",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("wrong old password status = %d, want 403", resp.StatusCode)
	}

	resp, body := doJSON(t, "POST", srv.URL+"/auth/password", tok, map[string]string{
		"old_password": "pw", "new_password": "pw2",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("change password status = %d: %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, "POST", srv.URL+"/auth/login", "", map[string]string{
		"email": "s@x.com", "password": "pw",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("old password still accepted: %d", resp.StatusCode)
	}
	login(t, srv, "s@x.com", "pw2")
}

func TestGateway_RequiresAuth(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, "POST", srv.URL+"/quizzes", "", map[string]any{
		"topic": "x", "subject": "y", "num_mcq": 1,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", resp.StatusCode)
	}
}

func TestGateway_Notes(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "S", "s@x.com", "pw", "student")
	tok := login(t, srv, "s@x.com", "pw")

	resp, body := doJSON(t, "POST", srv.URL+"/notes", tok, map[string]any{
		"topic": "Fractions", "subject": "Mathematics", "difficulty": "Easy",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("notes status = %d: %s", resp.StatusCode, body)
	}
	var out struct {
		Notes string `json:"notes"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(out.Notes, "Topic: Fractions") {
		t.Errorf("notes missing header:\n%s", out.Notes)
	}

	// empty topic is a validation error
	resp, _ = doJSON(t, "POST", srv.URL+"/notes", tok, map[string]any{
		"topic": "  ", "subject": "Mathematics",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty topic status = %d, want 400", resp.StatusCode)
	}
}

func TestGateway_QuizFlow(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "Student Demo", "s@x.com", "pw", "student")
	tok := login(t, srv, "s@x.com", "pw")

	resp, body := doJSON(t, "POST", srv.URL+"/quizzes", tok, map[string]any{
		"topic": "Linear Equations", "subject": "Mathematics", "difficulty": "Medium",
		"num_mcq": 2, "num_short": 1,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d: %s", resp.StatusCode, body)
	}
	var quiz tutor.Quiz
	if err := json.Unmarshal(body, &quiz); err != nil {
		t.Fatalf("unmarshal quiz: %v", err)
	}
	if quiz.ID == "" || len(quiz.Items) != 3 {
		t.Fatalf("quiz = %+v", quiz)
	}
	for i, it := range quiz.Items {
		if it.Answer != "" || it.Explanation != "" || len(it.Keywords) > 0 {
			t.Errorf("item %d leaked grading data: %+v", i, it)
		}
	}

	resp, body = doJSON(t, "POST", srv.URL+"/quizzes/"+quiz.ID+"/submit", tok, map[string]any{
		"answers": map[string]string{"q_0": quiz.Items[0].Options[0]},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d: %s", resp.StatusCode, body)
	}
	var grade tutor.GradeResult
	if err := json.Unmarshal(body, &grade); err != nil {
		t.Fatalf("unmarshal grade: %v", err)
	}
	if grade.Total != 3 || len(grade.FeedbackList) != 3 {
		t.Errorf("grade = %+v", grade)
	}

	// a quiz session grades once
	resp, _ = doJSON(t, "POST", srv.URL+"/quizzes/"+quiz.ID+"/submit", tok, map[string]any{
		"answers": map[string]string{},
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("re-submit status = %d, want 404", resp.StatusCode)
	}

	// the attempt is on record
	resp, body = doJSON(t, "GET", srv.URL+"/results", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("results status = %d", resp.StatusCode)
	}
	var rows []results.Record
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("unmarshal rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Email != "s@x.com" || rows[0].Total != 3 || rows[0].QuizType != "MCQ+Short" {
		t.Errorf("row = %+v", rows[0])
	}

	resp, body = doJSON(t, "GET", srv.URL+"/analytics/me", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("analytics status = %d", resp.StatusCode)
	}
	var an struct {
		Attempts int `json:"attempts"`
	}
	if err := json.Unmarshal(body, &an); err != nil || an.Attempts != 1 {
		t.Errorf("analytics = %s", body)
	}
}

func TestGateway_QuizValidation(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "S", "s@x.com", "pw", "student")
	tok := login(t, srv, "s@x.com", "pw")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing topic", map[string]any{"subject": "Math", "num_mcq": 1}},
		{"zero mcq", map[string]any{"topic": "x", "subject": "Math", "num_mcq": 0}},
		{"too many mcq", map[string]any{"topic": "x", "subject": "Math", "num_mcq": 11}},
		{"negative short", map[string]any{"topic": "x", "subject": "Math", "num_mcq": 1, "num_short": -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, "POST", srv.URL+"/quizzes", tok, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestGateway_TeacherOnlySurfaces(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "S", "s@x.com", "pw", "student")
	register(t, srv, "T", "t@x.com", "pw", "teacher")
	stok := login(t, srv, "s@x.com", "pw")
	ttok := login(t, srv, "t@x.com", "pw")

	resp, _ := doJSON(t, "GET", srv.URL+"/analytics/cohort", stok, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("student cohort status = %d, want 403", resp.StatusCode)
	}
	resp, _ = doJSON(t, "GET", srv.URL+"/analytics/cohort", ttok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("teacher cohort status = %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, "GET", srv.URL+"/reports/s@x.com.pdf", stok, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("student foreign report status = %d, want 403", resp.StatusCode)
	}
	resp, body := doJSON(t, "GET", srv.URL+"/reports/s@x.com.pdf", ttok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("teacher report status = %d", resp.StatusCode)
	} else if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Error("teacher report is not a PDF")
	}
}

func TestGateway_OwnReport(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "S", "s@x.com", "pw", "student")
	tok := login(t, srv, "s@x.com", "pw")

	resp, body := doJSON(t, "GET", srv.URL+"/reports/me.pdf", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report status = %d", resp.StatusCode)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Error("report is not a PDF")
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
}
