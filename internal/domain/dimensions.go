package domain

// Embedding dimensions for models served by either provider.
//
//nolint:gochecknoglobals // Static lookup table
var embeddingDimensions = map[string]int{
	"BAAI/bge-base-en-v1.5":                     768,
	"BAAI/bge-large-en-v1.5":                    1024,
	"togethercomputer/m2-bert-80M-8k-retrieval": 768,
	"WhereIsAI/UAE-Large-V1":                    1024,
	"text-embedding-ada-002":                    1536,
	"text-embedding-3-small":                    1536,
	"text-embedding-3-large":                    3072,
}

// EmbeddingDimension returns the vector length produced by model.
func EmbeddingDimension(model string) (int, bool) {
	dim, ok := embeddingDimensions[model]
	return dim, ok
}
