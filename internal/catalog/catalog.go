// Package catalog implements the shop side of the skill library: the shared,
// canonical list of sports and skills available for adoption.
//
// Every operation is a structural rebuild: the input slice is never mutated,
// untouched sports are shared with the result, and the changed sport is
// rebuilt. Targeting a missing id returns the input unchanged: existence is
// UI-derived, so a miss is a no-op, not an error.
package catalog

import (
	"strings"

	"skatetrack/internal/domain"
)

// AddSkill appends a deep copy of skill to the sport's list.
func AddSkill(sports []domain.Sport, sportID string, skill domain.Skill) []domain.Sport {
	return rebuildSport(sports, sportID, func(s domain.Sport) domain.Sport {
		skills := make([]domain.Skill, len(s.Skills), len(s.Skills)+1)
		copy(skills, s.Skills)
		s.Skills = append(skills, domain.CloneSkill(skill))
		return s
	})
}

// AddSkillUnlessNamed appends a deep copy of skill unless the sport already
// holds a skill with the same name, compared case-insensitively. This is the
// dedup rule applied when a custom dashboard skill is mirrored into the shop.
func AddSkillUnlessNamed(sports []domain.Sport, sportID string, skill domain.Skill) []domain.Sport {
	if HasSkillNamed(sports, sportID, skill.Name) {
		return sports
	}
	return AddSkill(sports, sportID, skill)
}

// AddSubSkillUnlessNamed mirrors a new dashboard sub-skill into the shop's
// matching skill, unless that skill already has a sub-skill with the same
// name (case-insensitive).
func AddSubSkillUnlessNamed(sports []domain.Sport, sportID, skillID string, subSkill domain.SubSkill) []domain.Sport {
	return rebuildSport(sports, sportID, func(s domain.Sport) domain.Sport {
		skills := make([]domain.Skill, len(s.Skills))
		copy(skills, s.Skills)
		for i, skill := range skills {
			if skill.ID != skillID {
				continue
			}
			for _, existing := range skill.SubSkills {
				if strings.EqualFold(existing.Name, subSkill.Name) {
					return s
				}
			}
			subs := make([]domain.SubSkill, len(skill.SubSkills), len(skill.SubSkills)+1)
			copy(subs, skill.SubSkills)
			skill.SubSkills = append(subs, domain.CloneSubSkill(subSkill))
			skills[i] = skill
		}
		s.Skills = skills
		return s
	})
}

// RemoveSkill filters the skill out of the sport's list.
func RemoveSkill(sports []domain.Sport, sportID, skillID string) []domain.Sport {
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

// HasSport reports whether the sport exists.
func HasSport(sports []domain.Sport, sportID string) bool {
	for _, sport := range sports {
		if sport.ID == sportID {
			return true
		}
	}
	return false
}

// FindSkill returns a deep copy of the skill, so callers can hold it across
// later store mutations.
func FindSkill(sports []domain.Sport, sportID, skillID string) (domain.Skill, bool) {
	for _, sport := range sports {
		if sport.ID != sportID {
			continue
		}
		for _, skill := range sport.Skills {
			if skill.ID == skillID {
				return domain.CloneSkill(skill), true
			}
		}
	}
	return domain.Skill{}, false
}

// HasSkillNamed reports whether the sport holds a skill with the given name,
// compared case-insensitively.
func HasSkillNamed(sports []domain.Sport, sportID, name string) bool {
	for _, sport := range sports {
		if sport.ID != sportID {
			continue
		}
		for _, skill := range sport.Skills {
			if strings.EqualFold(skill.Name, name) {
				return true
			}
		}
	}
	return false
}

// rebuildSport rebuilds the sport with the given id through fn, sharing all
// other sports with the input.
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
