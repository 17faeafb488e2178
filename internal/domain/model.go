// Package domain defines the entities shared by the catalog, dashboard and
// training stores. Entities are plain data; all behavior lives in the stores.
package domain

// MaxProgress is the top of the sub-skill mastery scale (0 = not started).
const MaxProgress = 5

// Sport is a top-level discipline grouping skills, e.g. "Patinação Inline".
// The same Sport id exists independently in the shop catalog and in the
// user's dashboard; the two copies never share sub-objects.
type Sport struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// Skill is a named ability with a tree of sub-skills tracking mastery.
type Skill struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	SubSkills []SubSkill `json:"subSkills"`
}

// SubSkill is the unit of mastery tracking.
type SubSkill struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Progress     int      `json:"progress"` // 0..MaxProgress
	Description  string   `json:"description"`
	Progression  string   `json:"progression"` // legacy free text, kept for old documents
	YoutubeLinks []string `json:"youtubeLinks"`
}

// Performance grades a completed training session.
type Performance string

// Wire values predate the English field names and are kept for document
// compatibility.
const (
	PerformanceGood Performance = "Bom"
	PerformanceOk   Performance = "Ok"
	PerformanceBad  Performance = "Ruim"
)

// Valid reports whether p is one of the three accepted grades.
func (p Performance) Valid() bool {
	return p == PerformanceGood || p == PerformanceOk || p == PerformanceBad
}

// TrainingExercise is one activity inside a session. It is either linked
// (SkillID and optionally SubSkillID set) or custom (CustomName set); the two
// modes are mutually exclusive. A linked id is a reference, not ownership: if
// the skill is later deleted the id dangles and the exercise renders unnamed.
type TrainingExercise struct {
	ID           string   `json:"id"`
	SkillID      string   `json:"skillId,omitempty"`
	SubSkillID   string   `json:"subSkillId,omitempty"`
	CustomName   string   `json:"customName,omitempty"`
	Sets         int      `json:"sets,omitempty"`
	Reps         int      `json:"reps,omitempty"`
	Duration     int      `json:"duration,omitempty"` // seconds
	YoutubeLinks []string `json:"youtubeLinks,omitempty"`
}

// TrainingSection groups exercises within a session.
type TrainingSection struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Duration  int                `json:"duration,omitempty"` // minutes
	Reps      int                `json:"reps,omitempty"`
	Exercises []TrainingExercise `json:"exercises"`
}

// TrainingSession is a planned or completed training event.
type TrainingSession struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Date     string            `json:"date"`           // "2006-01-02"
	Time     string            `json:"time,omitempty"` // "15:04"
	Duration int               `json:"duration"`       // minutes
	Sections []TrainingSection `json:"sections"`
	// Exercises is the legacy flat list written by the pre-sections build.
	// Loads fold it into Sections; current code never writes it.
	Exercises    []TrainingExercise `json:"exercises,omitempty"`
	Notes        string             `json:"notes"`
	Performance  Performance        `json:"performance,omitempty"`
	IsCompleted  bool               `json:"isCompleted"`
	YoutubeLinks []string           `json:"youtubeLinks,omitempty"`
}
