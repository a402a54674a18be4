package openaiclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/working-capital-api/internal/config"
)

// defaultTimeout vale quando openai_timeout não foi configurado
const defaultTimeout = 30 * time.Second

type Client interface {
	CreateChatCompletion(params ChatCompletionParams) (ChatCompletionResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API da OpenAI.
func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: requestTimeout(cfg),
		},
		config: cfg,
	}
}

// requestTimeout devolve o timeout configurado; o mesmo valor limita o
// http.Client e o contexto de cada requisição.
func requestTimeout(cfg *config.Config) time.Duration {
	if cfg.OpenAI.Timeout <= 0 {
		return defaultTimeout
	}
	return cfg.OpenAI.Timeout
}
