package cmd

import (
	"os"
	"strings"

	"github.com/cognitask/cognitask/llm"
)

// newLLMProvider builds a provider from the effective configuration.
// When no API key is configured, the conventional environment variables
// for the selected provider are consulted.
func newLLMProvider() (llm.Provider, error) {
	config := GetConfig()
	llmConfig := config.LLM

	if llmConfig.APIKey == "" {
		switch strings.ToLower(strings.TrimSpace(llmConfig.Provider)) {
		case "openai":
			llmConfig.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			llmConfig.APIKey = os.Getenv("GEMINI_API_KEY")
			if llmConfig.APIKey == "" {
				llmConfig.APIKey = os.Getenv("GOOGLE_AI_API_KEY")
			}
		}
	}
	llmConfig.Debug = llmConfig.Debug || config.Verbose

	return llm.NewProvider(&llmConfig)
}
