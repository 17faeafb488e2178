// Package training implements the training-session store: CRUD over
// sessions, the planned/completed views, and exercise name resolution.
//
// Sessions reference skills by id without owning them; a reference left
// dangling by a skill deletion is tolerated and fails soft at display time.
package training

import (
	"sort"

	"skatetrack/internal/domain"
)

// Add appends a deep copy of session.
func Add(sessions []domain.TrainingSession, session domain.TrainingSession) []domain.TrainingSession {
	out := make([]domain.TrainingSession, len(sessions), len(sessions)+1)
	copy(out, sessions)
	return append(out, domain.CloneSession(session))
}

// SessionUpdate carries a partial session mutation. Nil fields are left
// unchanged. Completion fields are deliberately absent: completing a session
// goes through Complete and cannot be reversed by an update.
type SessionUpdate struct {
	Title        *string
	Date         *string
	Time         *string
	Duration     *int
	Sections     []domain.TrainingSection
	YoutubeLinks []string
}

// Update merges upd into the session with the given id.
func Update(sessions []domain.TrainingSession, sessionID string, upd SessionUpdate) []domain.TrainingSession {
	return rebuild(sessions, sessionID, func(s domain.TrainingSession) domain.TrainingSession {
		if upd.Title != nil {
			s.Title = *upd.Title
		}
		if upd.Date != nil {
			s.Date = *upd.Date
		}
		if upd.Time != nil {
			s.Time = *upd.Time
		}
		if upd.Duration != nil {
			s.Duration = *upd.Duration
		}
		if upd.Sections != nil {
			sections := make([]domain.TrainingSection, len(upd.Sections))
			for i, sec := range upd.Sections {
				sections[i] = domain.CloneSection(sec)
			}
			s.Sections = sections
		}
		if upd.YoutubeLinks != nil {
			links := make([]string, len(upd.YoutubeLinks))
			copy(links, upd.YoutubeLinks)
			s.YoutubeLinks = links
		}
		return s
	})
}

// Complete marks the session done with the given grade and optional notes.
// The transition is one-way: a session that is already completed, or a grade
// outside the three accepted values, leaves the list unchanged.
func Complete(sessions []domain.TrainingSession, sessionID string, performance domain.Performance, notes string) []domain.TrainingSession {
	if !performance.Valid() {
		return sessions
	}
	return rebuild(sessions, sessionID, func(s domain.TrainingSession) domain.TrainingSession {
		if s.IsCompleted {
			return s
		}
		s.IsCompleted = true
		s.Performance = performance
		s.Notes = notes
		return s
	})
}

// Delete removes the session with the given id. Nothing references a
// session, so there is no cascade.
func Delete(sessions []domain.TrainingSession, sessionID string) []domain.TrainingSession {
	out := make([]domain.TrainingSession, 0, len(sessions))
	for _, s := range sessions {
		if s.ID != sessionID {
			out = append(out, s)
		}
	}
	return out
}

// Planned returns the not-yet-completed sessions sorted by date ascending.
// Dates are ISO strings, so lexicographic order is chronological order.
func Planned(sessions []domain.TrainingSession) []domain.TrainingSession {
	out := filter(sessions, func(s domain.TrainingSession) bool { return !s.IsCompleted })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Completed returns the completed sessions sorted by date descending.
func Completed(sessions []domain.TrainingSession) []domain.TrainingSession {
	out := filter(sessions, func(s domain.TrainingSession) bool { return s.IsCompleted })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// ExerciseName resolves the display name of an exercise. A custom name wins;
// otherwise the dashboard is searched for a matching skill or sub-skill id.
// A dangling reference resolves to "", which the caller renders as unnamed.
func ExerciseName(sports []domain.Sport, ex domain.TrainingExercise) string {
	if ex.CustomName != "" {
		return ex.CustomName
	}
	for _, sport := range sports {
		for _, skill := range sport.Skills {
			if skill.ID == ex.SkillID && ex.SubSkillID == "" {
				return skill.Name
			}
			for _, sub := range skill.SubSkills {
				if sub.ID == ex.SubSkillID {
					return sub.Name
				}
			}
		}
	}
	return ""
}

func rebuild(sessions []domain.TrainingSession, sessionID string, fn func(domain.TrainingSession) domain.TrainingSession) []domain.TrainingSession {
	for i, s := range sessions {
		if s.ID != sessionID {
			continue
		}
		out := make([]domain.TrainingSession, len(sessions))
		copy(out, sessions)
		out[i] = fn(s)
		return out
	}
	return sessions
}

func filter(sessions []domain.TrainingSession, keep func(domain.TrainingSession) bool) []domain.TrainingSession {
	var out []domain.TrainingSession
	for _, s := range sessions {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
