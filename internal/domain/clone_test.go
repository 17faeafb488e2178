package domain

import "testing"

func sampleSport() Sport {
	return Sport{
		ID:   "sport-1",
		Name: "Patinação Inline",
		Skills: []Skill{
			{
				ID:   "skill-1",
				Name: "Frenagem",
				SubSkills: []SubSkill{
					{ID: "sub-1", Name: "Freio em T", Progress: 3, YoutubeLinks: []string{"https://youtu.be/abc"}},
				},
			},
		},
	}
}

func TestCloneSportIndependence(t *testing.T) {
	orig := sampleSport()
	clone := CloneSport(orig)

	clone.Skills[0].Name = "changed"
	clone.Skills[0].SubSkills[0].Progress = 5
	clone.Skills[0].SubSkills[0].YoutubeLinks[0] = "https://youtu.be/xyz"

	if orig.Skills[0].Name != "Frenagem" {
		t.Errorf("skill name mutated through clone: %q", orig.Skills[0].Name)
	}
	if orig.Skills[0].SubSkills[0].Progress != 3 {
		t.Errorf("progress mutated through clone: %d", orig.Skills[0].SubSkills[0].Progress)
	}
	if orig.Skills[0].SubSkills[0].YoutubeLinks[0] != "https://youtu.be/abc" {
		t.Errorf("links mutated through clone: %v", orig.Skills[0].SubSkills[0].YoutubeLinks)
	}
}

func TestCloneSessionIndependence(t *testing.T) {
	orig := TrainingSession{
		ID:    "session-1",
		Title: "Treino de slides",
		Sections: []TrainingSection{
			{
				ID:   "sec-1",
				Name: "Aquecimento",
				Exercises: []TrainingExercise{
					{ID: "ex-1", CustomName: "Alongamento", Duration: 300},
				},
			},
		},
	}
	clone := CloneSession(orig)
	clone.Sections[0].Exercises[0].Duration = 600

	if orig.Sections[0].Exercises[0].Duration != 300 {
		t.Errorf("exercise duration mutated through clone: %d", orig.Sections[0].Exercises[0].Duration)
	}
}

func TestCloneNilStaysNil(t *testing.T) {
	if CloneSports(nil) != nil {
		t.Error("CloneSports(nil) != nil")
	}
	if CloneSessions(nil) != nil {
		t.Error("CloneSessions(nil) != nil")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := NewID("skill")
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
