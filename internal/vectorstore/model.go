package vectorstore

import (
	"errors"
	"fmt"

	"github.com/davidbz/vectorizer/internal/domain"
)

// IndexModel returns the embedding model the service would use with the
// selector's credentials, and that model's vector dimension. With no
// credential configured the primary provider's model is assumed.
func IndexModel(selector domain.Selector) (string, int, error) {
	kind := domain.ProviderPrimary

	selection, err := selector.Select("")
	switch {
	case err == nil:
		kind = selection.Provider
	case !errors.Is(err, domain.ErrNoCredential):
		return "", 0, fmt.Errorf("failed to select provider: %w", err)
	}

	profile, ok := domain.ProfileFor(kind)
	if !ok {
		return "", 0, fmt.Errorf("unknown provider kind %d", kind)
	}

	model := profile.EmbeddingRequest(domain.SingleInput("")).Model

	dimension, ok := domain.EmbeddingDimension(model)
	if !ok {
		return model, 0, fmt.Errorf("unknown dimension for embedding model %s", model)
	}

	return model, dimension, nil
}
