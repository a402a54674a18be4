package openai

import (
	"fmt"
	"strings"

	"github.com/vfg2006/working-capital-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/working-capital-api/internal/config"
)

// OpenAIIntegrator gera textos de análise a partir de prompts prontos
type OpenAIIntegrator interface {
	GenerateNarrative(systemPrompt, userPrompt string) (string, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) OpenAIIntegrator {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OpenAIService) GenerateNarrative(systemPrompt, userPrompt string) (string, error) {
	resp, err := s.Client.CreateChatCompletion(openaiclient.ChatCompletionParams{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(resp.Content())
	if content == "" {
		return "", fmt.Errorf("resposta do modelo veio vazia (id %s)", resp.ID)
	}

	return content, nil
}
