// Package seed holds the default catalog every account starts from. The ids
// are stable: documents saved by earlier builds reference them.
package seed

import "skatetrack/internal/domain"

// Shop returns the default shop catalog: the inline-skating skill tree.
func Shop() []domain.Sport {
	return domain.CloneSports(shopData)
}

// UserSports returns the default dashboard: every shop sport present but with
// no adopted skills. A new sport is always visible on the dashboard even
// before the user adopts anything from it.
func UserSports() []domain.Sport {
	sports := make([]domain.Sport, len(shopData))
	for i, s := range shopData {
		sports[i] = domain.Sport{ID: s.ID, Name: s.Name, Skills: []domain.Skill{}}
	}
	return sports
}

// Trainings returns the default training list. New accounts start empty.
func Trainings() []domain.TrainingSession {
	return []domain.TrainingSession{}
}

func sub(id, name string) domain.SubSkill {
	return domain.SubSkill{ID: id, Name: name, YoutubeLinks: []string{}}
}

var shopData = []domain.Sport{
	{
		ID:   "sport-inline",
		Name: "Patinação Inline",
		Skills: []domain.Skill{
			// Iniciante
			{ID: "skill-1", Name: "Frenagem", SubSkills: []domain.SubSkill{
				sub("sub-1-1", "Freio de Calcanhar"),
				sub("sub-1-2", "Freio em Cunha"),
				sub("sub-1-3", "Drag Stop"),
				sub("sub-1-4", "Freio em T"),
			}},
			{ID: "skill-2", Name: "Curvas", SubSkills: []domain.SubSkill{
				sub("sub-2-1", "Curva em A"),
				sub("sub-2-2", "Curva Paralela"),
			}},
			{ID: "skill-3", Name: "Patinar de Costas", SubSkills: []domain.SubSkill{
				sub("sub-3-1", "Swizzles de Costas"),
				sub("sub-3-2", "Passada de Costas"),
			}},
			{ID: "skill-4", Name: "Transições", SubSkills: []domain.SubSkill{
				sub("sub-4-1", "Transição Frente para Trás"),
			}},
			// Intermediário
			{ID: "skill-5", Name: "Patinar com um Pé Só", SubSkills: []domain.SubSkill{
				sub("sub-5-1", "Deslize com um Pé (Reto)"),
				sub("sub-5-2", "Deslize com um Pé (Curvas)"),
			}},
			{ID: "skill-6", Name: "Giros & Saltos", SubSkills: []domain.SubSkill{
				sub("sub-6-1", "Salto 180"),
				sub("sub-6-2", "Salto 360"),
				sub("sub-6-3", "Giro com Dois Pés"),
			}},
			{ID: "skill-7", Name: "Crossovers", SubSkills: []domain.SubSkill{
				sub("sub-7-1", "Crossover para Frente"),
				sub("sub-7-2", "Crossover para Trás"),
			}},
			// Avançado
			{ID: "skill-8", Name: "Slides", SubSkills: []domain.SubSkill{
				sub("sub-8-1", "Powerslide"),
				sub("sub-8-2", "Soul Slide"),
				sub("sub-8-3", "Magic Slide"),
			}},
			{ID: "skill-9", Name: "Grinds", SubSkills: []domain.SubSkill{
				sub("sub-9-1", "Soul Grind"),
				sub("sub-9-2", "Makio Grind"),
			}},
			{ID: "skill-10", Name: "Aéreos", SubSkills: []domain.SubSkill{
				sub("sub-10-1", "Saltos com Grab"),
				sub("sub-10-2", "Backflip"),
			}},
		},
	},
}
