package embedding

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns free text into a fixed-dimension vector. Used at hotel
// creation time for indexing and at search time for querying.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

const embeddingModel = "models/text-embedding-004"

// GeminiEmbedder implements Embedder with the Gemini embedding model.
type GeminiEmbedder struct {
	model *genai.EmbeddingModel
}

func NewGeminiEmbedder(ctx context.Context, apiKey string) (*GeminiEmbedder, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiEmbedder{model: client.EmbeddingModel(embeddingModel)}, nil
}

func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini embed returned an empty vector")
	}
	return resp.Embedding.Values, nil
}
