package syncgw

import (
	"golang.org/x/mod/semver"

	"skatetrack/internal/domain"
	"skatetrack/internal/remote"
)

// legacyMinutesMax is the unit-migration threshold: exercise durations below
// it in a pre-v2 document are taken to be legacy minutes. Values this large
// were never plausible as minutes, so seconds written by newer builds pass
// through untouched even if the version tag was lost.
const legacyMinutesMax = 1000

// MigrateDocument upgrades a loaded document to the current schema. The
// version tag decides whether anything runs: a document at or above
// remote.SchemaVersion is returned unchanged, so re-running the migration on
// already-migrated data can never double-convert.
func MigrateDocument(doc *remote.UserDocument) *remote.UserDocument {
	if doc == nil || !versionBefore(doc.SchemaVersion, remote.SchemaVersion) {
		return doc
	}

	for i := range doc.Trainings {
		doc.Trainings[i] = migrateSession(doc.Trainings[i])
	}
	doc.SchemaVersion = remote.SchemaVersion
	return doc
}

func migrateSession(s domain.TrainingSession) domain.TrainingSession {
	// Fold the legacy flat exercise list into a single section.
	if len(s.Exercises) > 0 && len(s.Sections) == 0 {
		s.Sections = []domain.TrainingSection{{
			ID:        domain.NewID("sec"),
			Name:      "",
			Exercises: s.Exercises,
		}}
	}
	s.Exercises = nil

	if s.Time == "" {
		s.Time = "10:00"
	}

	for i := range s.Sections {
		for j := range s.Sections[i].Exercises {
			s.Sections[i].Exercises[j].Duration = migrateDuration(s.Sections[i].Exercises[j].Duration)
		}
	}
	return s
}

// migrateDuration converts a legacy minute value to seconds.
func migrateDuration(d int) int {
	if d > 0 && d < legacyMinutesMax {
		return d * 60
	}
	return d
}

// versionBefore reports whether tagged is older than current. Untagged
// documents predate version tags entirely and always migrate.
func versionBefore(tagged, current string) bool {
	if tagged == "" {
		return true
	}
	if tagged[0] != 'v' {
		tagged = "v" + tagged
	}
	if !semver.IsValid(tagged) {
		return true
	}
	return semver.Compare(tagged, current) < 0
}
