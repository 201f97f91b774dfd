package ai

import (
	"context"
	"strings"
)

// TemplateGenerator is the credential-free generator. It answers with short
// canned wellness text so the assistant keeps working without an API key.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx

	lowered := strings.ToLower(prompt)
	switch {
	case strings.Contains(lowered, "dosha") || strings.Contains(lowered, "ayurved"):
		return "Your dosha balance shapes which foods, routines and treatments suit you best. " +
			"Favor warm, regular meals and a steady daily routine, and discuss persistent imbalances with your practitioner.", nil
	case strings.Contains(lowered, "sleep") || strings.Contains(lowered, "stress"):
		return "Good sleep and low stress are the foundation of recovery. Keep a fixed bedtime, avoid screens late in the evening, " +
			"and try ten minutes of pranayama before bed.", nil
	default:
		return "I've analyzed your request. Please check the suggested actions below.", nil
	}
}
