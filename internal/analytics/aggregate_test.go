package analytics

import (
	"reflect"
	"testing"

	"github.com/edututor/edututor/internal/results"
)

func row(email, subject string, score, total int, weakAreas string) results.Record {
	return results.Record{
		Email:     email,
		Subject:   subject,
		Score:     score,
		Total:     total,
		WeakAreas: weakAreas,
	}
}

func TestAveragePercent(t *testing.T) {
	tests := []struct {
		name string
		rows []results.Record
		want float64
	}{
		{"two attempts", []results.Record{row("a", "Math", 3, 5, ""), row("a", "Math", 5, 5, "")}, 80},
		{"empty", nil, 0},
		{"zero totals", []results.Record{row("a", "Math", 0, 0, "")}, 0},
		{"single perfect", []results.Record{row("a", "Math", 5, 5, "")}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AveragePercent(tt.rows); got != tt.want {
				t.Errorf("AveragePercent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubjectAverages(t *testing.T) {
	rows := []results.Record{
		row("a", "Math", 3, 5, ""),
		row("b", "Science", 4, 5, ""),
		row("a", "Math", 5, 5, ""),
	}
	got := SubjectAverages(rows)
	want := []SubjectAverage{
		{Subject: "Math", Percent: 80},
		{Subject: "Science", Percent: 80},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubjectAverages = %v, want %v", got, want)
	}
}

func TestTopWeakAreas_CombinesAcrossRows(t *testing.T) {
	rows := []results.Record{
		row("a", "Math", 1, 5, "algebra, algebra, geometry"),
		row("b", "Math", 2, 5, "algebra"),
	}
	got := TopWeakAreas(rows, 1)
	if len(got) != 1 || got[0].Area != "algebra" || got[0].Count != 3 {
		t.Errorf("top-1 = %v, want algebra:3", got)
	}
}

func TestTopWeakAreas_TieBrokenByFirstEncounter(t *testing.T) {
	rows := []results.Record{
		row("a", "Math", 1, 5, "geometry, algebra"),
		row("b", "Math", 1, 5, "algebra, geometry"),
	}
	got := TopWeakAreas(rows, 5)
	want := []WeakAreaCount{{"geometry", 2}, {"algebra", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWeakAreas = %v, want %v", got, want)
	}
}

func TestTopWeakAreas_CaseSensitive(t *testing.T) {
	rows := []results.Record{
		row("a", "Math", 1, 5, "Algebra, algebra"),
	}
	got := TopWeakAreas(rows, 5)
	if len(got) != 2 {
		t.Errorf("expected distinct entries for differing case, got %v", got)
	}
}

func TestTopWeakAreas_LimitAndEmpty(t *testing.T) {
	rows := []results.Record{
		row("a", "Math", 1, 5, "a1, a2, a3, a4, a5, a6, a7"),
	}
	if got := TopWeakAreas(rows, 5); len(got) != 5 {
		t.Errorf("limit 5 returned %d entries", len(got))
	}
	if got := TopWeakAreas(nil, 5); len(got) != 0 {
		t.Errorf("no rows should yield no entries, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	rows := []results.Record{
		row("a@x.com", "Math", 3, 5, ""),
		row("b@x.com", "Math", 4, 5, ""),
		row("a@x.com", "Science", 5, 5, ""),
	}
	o := Summarize(rows)
	if o.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", o.Attempts)
	}
	if o.ActiveStudents != 2 {
		t.Errorf("active students = %d, want 2", o.ActiveStudents)
	}
	if o.AveragePercent != 80 {
		t.Errorf("average = %v, want 80", o.AveragePercent)
	}
	if o.RecentPercent != 100 {
		t.Errorf("recent = %v, want 100", o.RecentPercent)
	}
}

func TestSummarize_Empty(t *testing.T) {
	o := Summarize(nil)
	if o.Attempts != 0 || o.ActiveStudents != 0 || o.AveragePercent != 0 || o.RecentPercent != 0 {
		t.Errorf("empty overview = %+v", o)
	}
}
