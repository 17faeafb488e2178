package dashboard

import (
	"testing"

	"skatetrack/internal/domain"
)

func userSports() []domain.Sport {
	return []domain.Sport{
		{ID: "sport-inline", Name: "Patinação Inline", Skills: []domain.Skill{}},
	}
}

func shopSkill() domain.Skill {
	return domain.Skill{
		ID:   "skill-1",
		Name: "Frenagem",
		SubSkills: []domain.SubSkill{
			{ID: "sub-1", Name: "Freio em T", Progress: 0},
		},
	}
}

func TestAdoptSkillIdempotent(t *testing.T) {
	sports := userSports()
	once := AdoptSkill(sports, "sport-inline", shopSkill())
	twice := AdoptSkill(once, "sport-inline", shopSkill())

	if len(once[0].Skills) != 1 {
		t.Fatalf("len(skills) after adopt = %d, want 1", len(once[0].Skills))
	}
	if len(twice[0].Skills) != 1 {
		t.Errorf("second adopt added a duplicate: %d skills", len(twice[0].Skills))
	}
}

func TestAdoptSkillCopyIndependence(t *testing.T) {
	source := shopSkill()
	sports := AdoptSkill(userSports(), "sport-inline", source)

	// Mutating the source after adoption must not show up in the store.
	source.SubSkills[0].Progress = 5
	if got := sports[0].Skills[0].SubSkills[0].Progress; got != 0 {
		t.Errorf("adopted copy progress = %d, want 0", got)
	}
}

func TestUpdateSubSkillMergesFields(t *testing.T) {
	sports := AdoptSkill(userSports(), "sport-inline", shopSkill())

	progress := 5
	sports = UpdateSubSkill(sports, "sport-inline", "skill-1", "sub-1", SubSkillUpdate{Progress: &progress})
	desc := "x"
	sports = UpdateSubSkill(sports, "sport-inline", "skill-1", "sub-1", SubSkillUpdate{Description: &desc})

	sub := sports[0].Skills[0].SubSkills[0]
	if sub.Progress != 5 {
		t.Errorf("Progress = %d, want 5 (lost by later partial update)", sub.Progress)
	}
	if sub.Description != "x" {
		t.Errorf("Description = %q, want \"x\"", sub.Description)
	}
	if sub.Name != "Freio em T" {
		t.Errorf("Name changed by partial update: %q", sub.Name)
	}
}

func TestUpdateSubSkillClampsProgress(t *testing.T) {
	sports := AdoptSkill(userSports(), "sport-inline", shopSkill())

	over := 99
	sports = UpdateSubSkill(sports, "sport-inline", "skill-1", "sub-1", SubSkillUpdate{Progress: &over})
	if got := sports[0].Skills[0].SubSkills[0].Progress; got != domain.MaxProgress {
		t.Errorf("Progress = %d, want clamped to %d", got, domain.MaxProgress)
	}

	under := -3
	sports = UpdateSubSkill(sports, "sport-inline", "skill-1", "sub-1", SubSkillUpdate{Progress: &under})
	if got := sports[0].Skills[0].SubSkills[0].Progress; got != 0 {
		t.Errorf("Progress = %d, want clamped to 0", got)
	}
}

func TestUpdateSubSkillMissingIDIsNoOp(t *testing.T) {
	sports := AdoptSkill(userSports(), "sport-inline", shopSkill())
	progress := 4
	got := UpdateSubSkill(sports, "sport-inline", "skill-1", "sub-nope", SubSkillUpdate{Progress: &progress})
	if got[0].Skills[0].SubSkills[0].Progress != 0 {
		t.Errorf("progress changed for wrong sub-skill")
	}
}

func TestDeleteSkill(t *testing.T) {
	sports := AdoptSkill(userSports(), "sport-inline", shopSkill())
	got := DeleteSkill(sports, "sport-inline", "skill-1")
	if len(got[0].Skills) != 0 {
		t.Errorf("skill not deleted")
	}
	if len(sports[0].Skills) != 1 {
		t.Errorf("input mutated")
	}
}

func TestDeleteSubSkill(t *testing.T) {
	sports := AdoptSkill(userSports(), "sport-inline", shopSkill())
	got := DeleteSubSkill(sports, "sport-inline", "skill-1", "sub-1")
	if len(got[0].Skills[0].SubSkills) != 0 {
		t.Errorf("sub-skill not deleted")
	}

	// Skill itself survives.
	if got[0].Skills[0].ID != "skill-1" {
		t.Errorf("skill removed along with sub-skill")
	}
}

func TestAddSubSkill(t *testing.T) {
	sports := AdoptSkill(userSports(), "sport-inline", shopSkill())
	got := AddSubSkill(sports, "sport-inline", "skill-1", domain.SubSkill{ID: "sub-2", Name: "Drag Stop"})
	if len(got[0].Skills[0].SubSkills) != 2 {
		t.Fatalf("len(subSkills) = %d, want 2", len(got[0].Skills[0].SubSkills))
	}
}
