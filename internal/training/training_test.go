package training

import (
	"testing"

	"skatetrack/internal/domain"
)

func sessions() []domain.TrainingSession {
	return []domain.TrainingSession{
		{ID: "session-1", Title: "Treino A", Date: "2026-03-10"},
		{ID: "session-2", Title: "Treino B", Date: "2026-03-01"},
		{ID: "session-3", Title: "Treino C", Date: "2026-02-20", IsCompleted: true, Performance: domain.PerformanceOk},
		{ID: "session-4", Title: "Treino D", Date: "2026-02-25", IsCompleted: true, Performance: domain.PerformanceGood},
	}
}

func TestPlannedSortedAscending(t *testing.T) {
	got := Planned(sessions())
	if len(got) != 2 {
		t.Fatalf("len(planned) = %d, want 2", len(got))
	}
	if got[0].ID != "session-2" || got[1].ID != "session-1" {
		t.Errorf("planned order = %s, %s; want session-2, session-1", got[0].ID, got[1].ID)
	}
}

func TestCompletedSortedDescending(t *testing.T) {
	got := Completed(sessions())
	if len(got) != 2 {
		t.Fatalf("len(completed) = %d, want 2", len(got))
	}
	if got[0].ID != "session-4" || got[1].ID != "session-3" {
		t.Errorf("completed order = %s, %s; want session-4, session-3", got[0].ID, got[1].ID)
	}
}

func TestCompleteMovesSessionBetweenViews(t *testing.T) {
	list := sessions()
	list = Complete(list, "session-1", domain.PerformanceGood, "boa sessão")

	for _, s := range Planned(list) {
		if s.ID == "session-1" {
			t.Fatal("completed session still listed as planned")
		}
	}
	completed := Completed(list)
	if completed[0].ID != "session-1" {
		t.Errorf("completed[0] = %s, want session-1 (most recent date)", completed[0].ID)
	}
	if completed[0].Performance != domain.PerformanceGood {
		t.Errorf("Performance = %q, want %q", completed[0].Performance, domain.PerformanceGood)
	}
	if completed[0].Notes != "boa sessão" {
		t.Errorf("Notes = %q", completed[0].Notes)
	}
}

func TestCompleteRequiresValidPerformance(t *testing.T) {
	list := Complete(sessions(), "session-1", "Excelente", "")
	for _, s := range list {
		if s.ID == "session-1" && s.IsCompleted {
			t.Error("session completed with an unknown performance grade")
		}
	}
}

func TestCompleteIsOneWay(t *testing.T) {
	list := Complete(sessions(), "session-3", domain.PerformanceBad, "overwrite?")
	for _, s := range list {
		if s.ID == "session-3" {
			if s.Performance != domain.PerformanceOk {
				t.Errorf("Performance overwritten on already-completed session: %q", s.Performance)
			}
		}
	}
}

func TestUpdateMergesWithoutTouchingCompletion(t *testing.T) {
	title := "Treino A2"
	duration := 90
	list := Update(sessions(), "session-1", SessionUpdate{Title: &title, Duration: &duration})

	var got domain.TrainingSession
	for _, s := range list {
		if s.ID == "session-1" {
			got = s
		}
	}
	if got.Title != "Treino A2" || got.Duration != 90 {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Date != "2026-03-10" {
		t.Errorf("unspecified field changed: Date = %q", got.Date)
	}
	if got.IsCompleted {
		t.Error("update flipped completion")
	}
}

func TestDelete(t *testing.T) {
	list := Delete(sessions(), "session-1")
	if len(list) != 3 {
		t.Errorf("len = %d, want 3", len(list))
	}
	// Missing id is a no-op.
	list = Delete(list, "session-nope")
	if len(list) != 3 {
		t.Errorf("len = %d after no-op delete, want 3", len(list))
	}
}

func TestExerciseName(t *testing.T) {
	sports := []domain.Sport{
		{ID: "sport-inline", Skills: []domain.Skill{
			{ID: "skill-1", Name: "Frenagem", SubSkills: []domain.SubSkill{
				{ID: "sub-1", Name: "Freio em T"},
			}},
		}},
	}

	tests := []struct {
		name string
		ex   domain.TrainingExercise
		want string
	}{
		{"custom name wins", domain.TrainingExercise{CustomName: "Alongamento", SkillID: "skill-1"}, "Alongamento"},
		{"skill link", domain.TrainingExercise{SkillID: "skill-1"}, "Frenagem"},
		{"sub-skill link", domain.TrainingExercise{SkillID: "skill-1", SubSkillID: "sub-1"}, "Freio em T"},
		{"dangling reference", domain.TrainingExercise{SkillID: "skill-deleted"}, ""},
	}
	for _, tt := range tests {
		if got := ExerciseName(sports, tt.ex); got != tt.want {
			t.Errorf("%s: ExerciseName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatExerciseDetails(t *testing.T) {
	ex := domain.TrainingExercise{Sets: 3, Reps: 10, Duration: 45}
	if got := FormatExerciseDetails(ex); got != "3 séries, 10 reps, 45 segs" {
		t.Errorf("FormatExerciseDetails = %q", got)
	}
	if got := FormatExerciseDetails(domain.TrainingExercise{Reps: 5}); got != "5 reps" {
		t.Errorf("FormatExerciseDetails = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-03-14"); got != "sábado, 14 de março de 2026" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate passthrough = %q", got)
	}
}
