package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Project ProjectConfig `mapstructure:"project" validate:"required"`
	Data    DataConfig    `mapstructure:"data" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"omitempty"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

// LLMConfig holds configuration for LLM integration
type LLMConfig struct {
	Provider        string  `mapstructure:"provider" validate:"omitempty,oneof=gemini openai"`
	ModelName       string  `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey          string  `mapstructure:"apiKey" validate:"omitempty,min=1"`
	MaxOutputTokens int     `mapstructure:"maxOutputTokens" validate:"omitempty,min=1"`
	Temperature     float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
	// RequestTimeoutSeconds controls the HTTP client timeout for LLM calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// Debug enables extra request/response logging within the LLM provider (generally tied to --verbose)
	Debug bool `mapstructure:"debug"`
}
