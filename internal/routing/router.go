package routing

import (
	"strings"

	"github.com/davidbz/vectorizer/internal/domain"
)

// CredentialSelector picks a provider from the configured credentials.
type CredentialSelector struct {
	creds domain.Credentials
}

// NewSelector creates a new selector over credentials read at start-up.
func NewSelector(creds domain.Credentials) *CredentialSelector {
	return &CredentialSelector{
		creds: domain.Credentials{
			PrimaryAPIKey:  strings.TrimSpace(creds.PrimaryAPIKey),
			FallbackAPIKey: strings.TrimSpace(creds.FallbackAPIKey),
		},
	}
}

// Select picks exactly one provider, in order: explicit primary key,
// configured primary key, configured fallback key.
func (s *CredentialSelector) Select(explicitKey string) (domain.Selection, error) {
	if key := strings.TrimSpace(explicitKey); key != "" {
		return domain.Selection{Provider: domain.ProviderPrimary, APIKey: key}, nil
	}

	if s.creds.PrimaryAPIKey != "" {
		return domain.Selection{Provider: domain.ProviderPrimary, APIKey: s.creds.PrimaryAPIKey}, nil
	}

	if s.creds.FallbackAPIKey != "" {
		return domain.Selection{Provider: domain.ProviderFallback, APIKey: s.creds.FallbackAPIKey}, nil
	}

	return domain.Selection{}, domain.NewError(domain.KindConfiguration, "", domain.ErrNoCredential)
}
