// Package dashboard implements the user's personal side of the skill library:
// adopted shop skills plus custom entries, and all mastery mutations.
//
// Operations follow the same rebuild contract as package catalog: inputs are
// never mutated and missing ids are silent no-ops.
package dashboard

import "skatetrack/internal/domain"

// AdoptSkill deep-copies skill into the sport's list. Adopting a skill whose
// id is already present is a no-op, checked by id equality only: the adopted
// copy may have diverged from the shop version and must not be replaced.
func AdoptSkill(sports []domain.Sport, sportID string, skill domain.Skill) []domain.Sport {
	return rebuildSport(sports, sportID, func(s domain.Sport) domain.Sport {
		for _, existing := range s.Skills {
			if existing.ID == skill.ID {
				return s
			}
		}
		skills := make([]domain.Skill, len(s.Skills), len(s.Skills)+1)
		copy(skills, s.Skills)
		s.Skills = append(skills, domain.CloneSkill(skill))
		return s
	})
}

// AddSkill appends a deep copy of skill unconditionally. Used for custom
// skills, which always land on the dashboard regardless of shop dedup.
func AddSkill(sports []domain.Sport, sportID string, skill domain.Skill) []domain.Sport {
	return rebuildSport(sports, sportID, func(s domain.Sport) domain.Sport {
		skills := make([]domain.Skill, len(s.Skills), len(s.Skills)+1)
		copy(skills, s.Skills)
		s.Skills = append(skills, domain.CloneSkill(skill))
		return s
	})
}

// AddSubSkill appends a deep copy of subSkill under the given skill.
func AddSubSkill(sports []domain.Sport, sportID, skillID string, subSkill domain.SubSkill) []domain.Sport {
	return rebuildSkill(sports, sportID, skillID, func(skill domain.Skill) domain.Skill {
		subs := make([]domain.SubSkill, len(skill.SubSkills), len(skill.SubSkills)+1)
		copy(subs, skill.SubSkills)
		skill.SubSkills = append(subs, domain.CloneSubSkill(subSkill))
		return skill
	})
}

// SubSkillUpdate carries a partial sub-skill mutation. Nil fields are left
// unchanged. Progress and the rich-editor fields share this single merge
// path.
type SubSkillUpdate struct {
	Progress     *int
	Description  *string
	Progression  *string
	YoutubeLinks []string
}

// UpdateSubSkill merges upd into the target sub-skill, preserving every
// field the update does not name.
func UpdateSubSkill(sports []domain.Sport, sportID, skillID, subSkillID string, upd SubSkillUpdate) []domain.Sport {
	return rebuildSkill(sports, sportID, skillID, func(skill domain.Skill) domain.Skill {
		subs := make([]domain.SubSkill, len(skill.SubSkills))
		copy(subs, skill.SubSkills)
		for i, sub := range subs {
			if sub.ID != subSkillID {
				continue
			}
			if upd.Progress != nil {
				sub.Progress = clampProgress(*upd.Progress)
			}
			if upd.Description != nil {
				sub.Description = *upd.Description
			}
			if upd.Progression != nil {
				sub.Progression = *upd.Progression
			}
			if upd.YoutubeLinks != nil {
				links := make([]string, len(upd.YoutubeLinks))
				copy(links, upd.YoutubeLinks)
				sub.YoutubeLinks = links
			}
			subs[i] = sub
		}
		skill.SubSkills = subs
		return skill
	})
}

// DeleteSkill filters the skill out of the sport's list. Dashboard-only:
// the shop copy is untouched.
func DeleteSkill(sports []domain.Sport, sportID, skillID string) []domain.Sport {
	return rebuildSport(sports, sportID, func(s domain.Sport) domain.Sport {
		skills := make([]domain.Skill, 0, len(s.Skills))
		for _, skill := range s.Skills {
			if skill.ID != skillID {
				skills = append(skills, skill)
			}
		}
		s.Skills = skills
		return s
	})
}

// DeleteSubSkill filters the sub-skill out of the skill's list.
func DeleteSubSkill(sports []domain.Sport, sportID, skillID, subSkillID string) []domain.Sport {
	return rebuildSkill(sports, sportID, skillID, func(skill domain.Skill) domain.Skill {
		subs := make([]domain.SubSkill, 0, len(skill.SubSkills))
		for _, sub := range skill.SubSkills {
			if sub.ID != subSkillID {
				subs = append(subs, sub)
			}
		}
		skill.SubSkills = subs
		return skill
	})
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > domain.MaxProgress {
		return domain.MaxProgress
	}
	return p
}

func rebuildSport(sports []domain.Sport, sportID string, fn func(domain.Sport) domain.Sport) []domain.Sport {
	for i, sport := range sports {
		if sport.ID != sportID {
			continue
		}
		out := make([]domain.Sport, len(sports))
		copy(out, sports)
		out[i] = fn(sport)
		return out
	}
	return sports
}

func rebuildSkill(sports []domain.Sport, sportID, skillID string, fn func(domain.Skill) domain.Skill) []domain.Sport {
	return rebuildSport(sports, sportID, func(s domain.Sport) domain.Sport {
		for i, skill := range s.Skills {
			if skill.ID != skillID {
				continue
			}
			skills := make([]domain.Skill, len(s.Skills))
			copy(skills, s.Skills)
			skills[i] = fn(skill)
			s.Skills = skills
			return s
		}
		return s
	})
}
