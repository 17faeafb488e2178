// Package tracker is the single mutation surface over the shop catalog, the
// user dashboard and the training list. Compound operations such as adopting
// a shop skill or the shop-delete cascade commit all affected collections in
// one state transition, so no reader ever observes a half-applied invariant.
package tracker

import (
	"sync"

	"skatetrack/internal/catalog"
	"skatetrack/internal/dashboard"
	"skatetrack/internal/domain"
	"skatetrack/internal/training"
)

// State is the combined store state. Snapshots handed out by the tracker are
// deep copies; callers may keep or mutate them freely.
type State struct {
	UserSports []domain.Sport
	ShopSports []domain.Sport
	Trainings  []domain.TrainingSession
}

func (s State) clone() State {
	return State{
		UserSports: domain.CloneSports(s.UserSports),
		ShopSports: domain.CloneSports(s.ShopSports),
		Trainings:  domain.CloneSessions(s.Trainings),
	}
}

// Subscriber receives the post-commit snapshot of every state transition.
type Subscriber func(State)

// Tracker owns the three stores. All methods are safe for concurrent use;
// each mutation runs to completion before any other mutation or read is
// observed.
type Tracker struct {
	mu          sync.Mutex
	state       State
	subscribers []Subscriber
}

// New creates a tracker holding the given initial state.
func New(initial State) *Tracker {
	return &Tracker{state: initial.clone()}
}

// Subscribe registers fn to be called with a snapshot after every committed
// transition, including Replace and Reset. Notification happens outside the
// state lock, in commit order.
func (t *Tracker) Subscribe(fn Subscriber) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subscribers = append(t.subscribers, fn)
}

// Snapshot returns a deep copy of the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.clone()
}

// commit applies fn to the current state as one transition and notifies
// subscribers with a fresh snapshot.
func (t *Tracker) commit(fn func(State) State) {
	t.mu.Lock()
	t.state = fn(t.state)
	snap := t.state.clone()
	subs := t.subscribers
	t.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Replace swaps in externally-loaded state (the sync gateway's load path).
func (t *Tracker) Replace(s State) {
	t.commit(func(State) State { return s.clone() })
}

// Reset returns all stores to the given seed state (the sign-out path).
func (t *Tracker) Reset(s State) {
	t.Replace(s)
}

// AddSport creates a new sport in both the shop and the dashboard: a new
// discipline is always immediately visible to the user who created it.
// Returns "" without committing when the name is blank.
func (t *Tracker) AddSport(name string) string {
	name = domain.CleanName(name)
	if name == "" {
		return ""
	}
	sport := domain.Sport{ID: domain.NewID("sport"), Name: name, Skills: []domain.Skill{}}
	t.commit(func(s State) State {
		shop := append(domain.CloneSports(s.ShopSports), domain.CloneSport(sport))
		user := append(domain.CloneSports(s.UserSports), domain.CloneSport(sport))
		s.ShopSports = shop
		s.UserSports = user
		return s
	})
	return sport.ID
}

// AddSkillToShop appends a new empty skill to the shop sport. Returns "" without
// committing when the name is blank or the sport does not exist.
func (t *Tracker) AddSkillToShop(sportID, name string) string {
	name = domain.CleanName(name)
	if name == "" {
		return ""
	}
	skill := domain.Skill{ID: domain.NewID("skill"), Name: name, SubSkills: []domain.SubSkill{}}
	added := false
	t.commit(func(s State) State {
		if !catalog.HasSport(s.ShopSports, sportID) {
			return s
		}
		added = true
		s.ShopSports = catalog.AddSkill(s.ShopSports, sportID, skill)
		return s
	})
	if !added {
		return ""
	}
	return skill.ID
}

// RemoveSkillFromShop removes the skill from the shop and cascades the same
// id out of the dashboard's matching sport. Both stores reach their new state
// in the same transition: the dashboard never references an id the shop no
// longer holds.
func (t *Tracker) RemoveSkillFromShop(sportID, skillID string) {
	t.commit(func(s State) State {
		s.ShopSports = catalog.RemoveSkill(s.ShopSports, sportID, skillID)
		s.UserSports = dashboard.DeleteSkill(s.UserSports, sportID, skillID)
		return s
	})
}

// AdoptSkill deep-copies a shop skill into the dashboard. A no-op when the
// skill id is already adopted or does not exist in the shop.
func (t *Tracker) AdoptSkill(sportID, skillID string) {
	t.commit(func(s State) State {
		skill, ok := catalog.FindSkill(s.ShopSports, sportID, skillID)
		if !ok {
			return s
		}
		s.UserSports = dashboard.AdoptSkill(s.UserSports, sportID, skill)
		return s
	})
}

// AddCustomSkill inserts a fresh skill into the dashboard and mirrors it into
// the shop unless the shop sport already has a skill with the same name
// (case-insensitive). Returns "" without committing when the name is blank or
// the dashboard sport does not exist.
func (t *Tracker) AddCustomSkill(sportID, name string) string {
	name = domain.CleanName(name)
	if name == "" {
		return ""
	}
	skill := domain.Skill{ID: domain.NewID("skill"), Name: name, SubSkills: []domain.SubSkill{}}
	added := false
	t.commit(func(s State) State {
		if !catalog.HasSport(s.UserSports, sportID) {
			return s
		}
		added = true
		s.UserSports = dashboard.AddSkill(s.UserSports, sportID, skill)
		s.ShopSports = catalog.AddSkillUnlessNamed(s.ShopSports, sportID, skill)
		return s
	})
	if !added {
		return ""
	}
	return skill.ID
}

// AddSubSkill inserts a fresh sub-skill under the dashboard skill, mirroring
// it into the shop's matching skill under the same name-dedup rule. Returns
// "" without committing when the name is blank or the dashboard skill does
// not exist.
func (t *Tracker) AddSubSkill(sportID, skillID, name string) string {
	name = domain.CleanName(name)
	if name == "" {
		return ""
	}
	subSkill := domain.SubSkill{ID: domain.NewID("sub"), Name: name, YoutubeLinks: []string{}}
	added := false
	t.commit(func(s State) State {
		if _, ok := catalog.FindSkill(s.UserSports, sportID, skillID); !ok {
			return s
		}
		added = true
		s.UserSports = dashboard.AddSubSkill(s.UserSports, sportID, skillID, subSkill)
		s.ShopSports = catalog.AddSubSkillUnlessNamed(s.ShopSports, sportID, skillID, subSkill)
		return s
	})
	if !added {
		return ""
	}
	return subSkill.ID
}

// UpdateSubSkill merges a partial update into the dashboard sub-skill. The
// shop copy is untouched: mastery is personal.
func (t *Tracker) UpdateSubSkill(sportID, skillID, subSkillID string, upd dashboard.SubSkillUpdate) {
	t.commit(func(s State) State {
		s.UserSports = dashboard.UpdateSubSkill(s.UserSports, sportID, skillID, subSkillID, upd)
		return s
	})
}

// DeleteSkill removes a skill from the dashboard only. No reverse cascade:
// the shop keeps its copy.
func (t *Tracker) DeleteSkill(sportID, skillID string) {
	t.commit(func(s State) State {
		s.UserSports = dashboard.DeleteSkill(s.UserSports, sportID, skillID)
		return s
	})
}

// DeleteSubSkill removes a sub-skill from the dashboard only.
func (t *Tracker) DeleteSubSkill(sportID, skillID, subSkillID string) {
	t.commit(func(s State) State {
		s.UserSports = dashboard.DeleteSubSkill(s.UserSports, sportID, skillID, subSkillID)
		return s
	})
}

// AddTrainingSession appends a session to the training list.
func (t *Tracker) AddTrainingSession(session domain.TrainingSession) {
	t.commit(func(s State) State {
		s.Trainings = training.Add(s.Trainings, session)
		return s
	})
}

// UpdateTrainingSession merges a partial update into the session.
func (t *Tracker) UpdateTrainingSession(sessionID string, upd training.SessionUpdate) {
	t.commit(func(s State) State {
		s.Trainings = training.Update(s.Trainings, sessionID, upd)
		return s
	})
}

// CompleteTrainingSession marks a session done. One-way; see training.Complete.
func (t *Tracker) CompleteTrainingSession(sessionID string, performance domain.Performance, notes string) {
	t.commit(func(s State) State {
		s.Trainings = training.Complete(s.Trainings, sessionID, performance, notes)
		return s
	})
}

// DeleteTrainingSession removes a session.
func (t *Tracker) DeleteTrainingSession(sessionID string) {
	t.commit(func(s State) State {
		s.Trainings = training.Delete(s.Trainings, sessionID)
		return s
	})
}
