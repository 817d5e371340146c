package together

// DefaultBaseURL is the Together AI OpenAI-compatible endpoint.
const DefaultBaseURL = "https://api.together.xyz/v1"

// Config contains Together AI provider configuration.
type Config struct {
	APIKey  string `env:"TOGETHER_API_KEY"`
	BaseURL string `env:"TOGETHER_BASE_URL" envDefault:"https://api.together.xyz/v1"`
	Timeout int    `env:"TOGETHER_TIMEOUT"  envDefault:"0"`
}
