package domain

// ProviderKind tags which hosted provider serves a call.
type ProviderKind int

const (
	// ProviderPrimary is the first-choice provider (Together AI).
	ProviderPrimary ProviderKind = iota + 1

	// ProviderFallback is used only when no primary credential is available (OpenAI).
	ProviderFallback
)

func (k ProviderKind) String() string {
	if profile, ok := ProfileFor(k); ok {
		return profile.Name
	}
	return "unknown"
}

// Credentials holds the configured API keys, read once at start-up.
type Credentials struct {
	PrimaryAPIKey  string
	FallbackAPIKey string
}

// Selection is the provider chosen for a single call together with the key to use.
type Selection struct {
	Provider ProviderKind
	APIKey   string
}

// ProviderProfile describes how requests are adjusted for a provider.
// Empty model fields keep the caller's model.
type ProviderProfile struct {
	Name            string
	ChatModel       string
	EmbeddingModel  string
	ForwardSampling bool
	ForwardExtra    bool
}

//nolint:gochecknoglobals // Static dispatch table
var profiles = map[ProviderKind]ProviderProfile{
	ProviderPrimary: {
		Name:            "together",
		ChatModel:       "",
		EmbeddingModel:  "",
		ForwardSampling: true,
		ForwardExtra:    true,
	},
	ProviderFallback: {
		// Primary-provider model ids are not valid here.
		Name:            "openai",
		ChatModel:       "gpt-4o-mini",
		EmbeddingModel:  "text-embedding-3-small",
		ForwardSampling: false,
		ForwardExtra:    false,
	},
}

// ProfileFor returns the profile of a provider kind.
func ProfileFor(kind ProviderKind) (ProviderProfile, bool) {
	profile, ok := profiles[kind]
	return profile, ok
}

// ChatRequest returns a copy of req adjusted for this provider.
func (p ProviderProfile) ChatRequest(req *CompletionRequest) *CompletionRequest {
	adjusted := *req
	if p.ChatModel != "" {
		adjusted.Model = p.ChatModel
	}
	if !p.ForwardSampling {
		adjusted.TopP = nil
		adjusted.Temperature = nil
	}
	if !p.ForwardExtra {
		adjusted.Extra = nil
	}
	adjusted.APIKey = ""
	return &adjusted
}

// EmbeddingRequest returns a copy of req adjusted for this provider.
func (p ProviderProfile) EmbeddingRequest(req *EmbeddingRequest) *EmbeddingRequest {
	adjusted := *req
	if p.EmbeddingModel != "" {
		adjusted.Model = p.EmbeddingModel
	}
	if !p.ForwardExtra {
		adjusted.Extra = nil
	}
	adjusted.APIKey = ""
	return &adjusted
}
