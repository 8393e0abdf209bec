package sqltutor

import (
	"context"
	"fmt"
	"strings"

	ollama "github.com/eslider/go-ollama"
	"github.com/rs/zerolog"
)

// promptTemplate frames the retrieved manual context for the model.
const promptTemplate = `
You are a helpful SQL tutor. Use the given context and your SQL knowledge.
Explain the answer clearly and give short examples if useful.

Context:
%s

Question:
%s

Answer:
`

// temperature for answer generation.
const temperature = 0.7

// Generator produces a model completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ollamaQuerier interface {
	Query(ollama.Request) error
}

// OllamaGenerator generates completions via an Ollama/Open WebUI
// generate endpoint, collecting the streamed response chunks into one
// string.
type OllamaGenerator struct {
	client ollamaQuerier
	model  string
}

// NewOllamaGenerator creates a generator for the given endpoint and model.
func NewOllamaGenerator(dsn *ollama.DSN, model string) *OllamaGenerator {
	if model == "" {
		model = defaultModel
	}
	return &OllamaGenerator{
		client: ollama.NewOpenWebUiClient(dsn),
		model:  model,
	}
}

// Generate runs one completion for the prompt.
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var parts []string
	err := g.client.Query(ollama.Request{
		Model:  g.model,
		Prompt: prompt,
		Options: &ollama.RequestOptions{
			Temperature: ollama.Float(temperature),
		},
		OnJson: func(res ollama.Response) error {
			if res.Response != nil {
				parts = append(parts, *res.Response)
			}
			return nil
		},
	})
	if err != nil {
		return "", fmt.Errorf("sqltutor: generation failed: %w", err)
	}
	return strings.Join(parts, ""), nil
}

// Tutor answers questions about the indexed manual by retrieving the
// most relevant chunks and asking the model.
type Tutor struct {
	store *Store
	gen   Generator
	topK  int
	log   zerolog.Logger
}

// NewTutor creates a tutor over the given chunk store and generator.
func NewTutor(store *Store, gen Generator, log zerolog.Logger) *Tutor {
	return &Tutor{
		store: store,
		gen:   gen,
		topK:  defaultTopK,
		log:   log,
	}
}

// Answer processes one question. Failures never escape: any error is
// collapsed into the returned answer text, so a processed query always
// yields a displayable string.
func (t *Tutor) Answer(ctx context.Context, query string) string {
	answer, err := t.answer(ctx, query)
	if err != nil {
		t.log.Error().Err(err).Str("query", query).Msg("Failed to process query")
		return fmt.Sprintf("Error processing query: %v", err)
	}
	return answer
}

func (t *Tutor) answer(ctx context.Context, query string) (string, error) {
	chunks, err := t.store.Chunks(ctx)
	if err != nil {
		return "", err
	}
	manualContext := strings.Join(Rank(query, chunks, t.topK), "\n\n")
	prompt := fmt.Sprintf(promptTemplate, manualContext, query)

	answer, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
