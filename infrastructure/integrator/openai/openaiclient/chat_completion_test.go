package openaiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/working-capital-api/internal/config"
)

func testConfig(url string, timeout time.Duration) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAI{
			URL:     url,
			APIKey:  "chave-de-teste",
			Model:   "gpt-4o-mini",
			Timeout: timeout,
		},
	}
}

func TestCreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer chave-de-teste", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","choices":[{"index":0,"message":{"role":"assistant","content":"análise pronta"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 5*time.Second))

	response, err := client.CreateChatCompletion(ChatCompletionParams{
		SystemPrompt: "você é um analista financeiro",
		UserPrompt:   "resuma o trimestre",
	})
	require.NoError(t, err)
	assert.Equal(t, "análise pronta", response.Content())
}

func TestCreateChatCompletionRespectsConfiguredTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	// o prazo da requisição vem da configuração, não de um valor fixo
	client := NewClient(testConfig(server.URL, 50*time.Millisecond))

	_, err := client.CreateChatCompletion(ChatCompletionParams{UserPrompt: "resuma"})
	require.Error(t, err)
}

func TestCreateChatCompletionFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota excedida"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, 0)) // usa o timeout padrão

	_, err := client.CreateChatCompletion(ChatCompletionParams{UserPrompt: "resuma"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota excedida")
}
