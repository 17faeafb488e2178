package domain

// Deep clone helpers. Adoption and store snapshots must hand out structurally
// independent copies; a shared sub-slice would let a mutation in one store
// become visible in the other.

// CloneSports deep-copies a sport list.
func CloneSports(sports []Sport) []Sport {
	if sports == nil {
		return nil
	}
	out := make([]Sport, len(sports))
	for i, s := range sports {
		out[i] = CloneSport(s)
	}
	return out
}

// CloneSport deep-copies a sport and its full skill tree.
func CloneSport(s Sport) Sport {
	c := s
	c.Skills = CloneSkills(s.Skills)
	return c
}

// CloneSkills deep-copies a skill list.
func CloneSkills(skills []Skill) []Skill {
	if skills == nil {
		return nil
	}
	out := make([]Skill, len(skills))
	for i, s := range skills {
		out[i] = CloneSkill(s)
	}
	return out
}

// CloneSkill deep-copies a skill and its sub-skills.
func CloneSkill(s Skill) Skill {
	c := s
	if s.SubSkills != nil {
		c.SubSkills = make([]SubSkill, len(s.SubSkills))
		for i, sub := range s.SubSkills {
			c.SubSkills[i] = CloneSubSkill(sub)
		}
	}
	return c
}

// CloneSubSkill deep-copies a sub-skill.
func CloneSubSkill(s SubSkill) SubSkill {
	c := s
	c.YoutubeLinks = cloneStrings(s.YoutubeLinks)
	return c
}

// CloneSessions deep-copies a session list.
func CloneSessions(sessions []TrainingSession) []TrainingSession {
	if sessions == nil {
		return nil
	}
	out := make([]TrainingSession, len(sessions))
	for i, s := range sessions {
		out[i] = CloneSession(s)
	}
	return out
}

// CloneSession deep-copies a session with its sections and exercises.
func CloneSession(s TrainingSession) TrainingSession {
	c := s
	c.YoutubeLinks = cloneStrings(s.YoutubeLinks)
	if s.Sections != nil {
		c.Sections = make([]TrainingSection, len(s.Sections))
		for i, sec := range s.Sections {
			c.Sections[i] = CloneSection(sec)
		}
	}
	if s.Exercises != nil {
		c.Exercises = make([]TrainingExercise, len(s.Exercises))
		for i, ex := range s.Exercises {
			c.Exercises[i] = CloneExercise(ex)
		}
	}
	return c
}

// CloneSection deep-copies a section and its exercises.
func CloneSection(s TrainingSection) TrainingSection {
	c := s
	if s.Exercises != nil {
		c.Exercises = make([]TrainingExercise, len(s.Exercises))
		for i, ex := range s.Exercises {
			c.Exercises[i] = CloneExercise(ex)
		}
	}
	return c
}

// CloneExercise deep-copies an exercise.
func CloneExercise(e TrainingExercise) TrainingExercise {
	c := e
	c.YoutubeLinks = cloneStrings(e.YoutubeLinks)
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
