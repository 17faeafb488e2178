// Package tips generates coaching guidance for inline skating skills.
// A Coach asks the configured model backend for a structured guide in
// Brazilian Portuguese and renders it as three titled sections.
package tips

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// FallbackMessage is shown when tip generation fails.
const FallbackMessage = "Não foi possível buscar as dicas da IA. Por favor, verifique o console para mais detalhes."

const systemPrompt = "Você é um treinador especialista em patinação inline. " +
	"Suas respostas são encorajadoras, fáceis de entender e sempre em português do Brasil."

const tipsMaxTokens = 1024

// SkillTips is a structured coaching guide for one skill.
type SkillTips struct {
	// Technique describes the key steps and body positioning.
	Technique string `json:"technique"`

	// CommonMistakes lists beginner mistakes and how to avoid them.
	CommonMistakes []string `json:"commonMistakes"`

	// PracticeDrills lists exercises to master the skill.
	PracticeDrills []string `json:"practiceDrills"`
}

// tipsSchema constrains the model output to the SkillTips shape.
var tipsSchema = &Schema{
	Name:        "skill-tips",
	Description: "Guia de treino para uma habilidade de patinação inline",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"technique": map[string]any{
				"type":        "string",
				"description": "Passos chave e posicionamento do corpo para executar o movimento corretamente",
			},
			"commonMistakes": map[string]any{
				"type":        "array",
				"description": "2-3 erros comuns de iniciantes e como evitá-los",
				"items":       map[string]any{"type": "string"},
			},
			"practiceDrills": map[string]any{
				"type":        "array",
				"description": "2-3 exercícios específicos para dominar a habilidade",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []any{"technique", "commonMistakes", "practiceDrills"},
	},
}

// Coach turns skill names into coaching guides.
type Coach struct {
	provider Provider
}

// NewCoach creates a Coach backed by the given provider.
func NewCoach(p Provider) *Coach {
	return &Coach{provider: p}
}

// ForSkill generates a coaching guide for the named skill.
func (c *Coach) ForSkill(ctx context.Context, skillName string) (*SkillTips, error) {
	prompt := fmt.Sprintf(
		"Forneça um guia conciso e útil para aprender a seguinte habilidade de patinação inline: %q. "+
			"Descreva a técnica, liste 2-3 erros comuns que iniciantes cometem e sugira 2-3 exercícios práticos.",
		skillName)

	resp, err := c.provider.Generate(ctx, Request{
		System:    systemPrompt,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		Schema:    tipsSchema,
		MaxTokens: tipsMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate tips for %q: %w", skillName, err)
	}

	var out SkillTips
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &out, nil
}

// Render formats the guide as three titled markdown sections.
func (t *SkillTips) Render() string {
	var b strings.Builder

	b.WriteString("### Detalhes da Técnica\n")
	b.WriteString(t.Technique)
	b.WriteString("\n\n### Erros Comuns\n")
	for _, m := range t.CommonMistakes {
		b.WriteString("- ")
		b.WriteString(m)
		b.WriteString("\n")
	}
	b.WriteString("\n### Exercícios Práticos\n")
	for _, d := range t.PracticeDrills {
		b.WriteString("- ")
		b.WriteString(d)
		b.WriteString("\n")
	}

	return b.String()
}
