package ai

import (
	"strings"

	"github.com/ayursutra/backend/internal/config"
)

const (
	ModeTemplate = "template"
	ModeOpenAI   = "openai"
)

// NewGenerator selects a generator from config. Missing credentials always
// degrade to template-only mode rather than failing startup.
func NewGenerator(cfg *config.Config) Generator {
	mode := strings.ToLower(strings.TrimSpace(cfg.AIMode))
	if mode == "" {
		mode = ModeTemplate
	}

	switch mode {
	case ModeOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return NewTemplateGenerator()
		}
		return NewOpenAIGenerator(cfg)
	default:
		return NewTemplateGenerator()
	}
}
