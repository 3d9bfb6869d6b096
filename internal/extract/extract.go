// Package extract talks to the hosted Gemini model and turns uploaded files
// into structured analysis records. It is the only outbound interface of the
// application; callers treat every failure as terminal for the owning entity
// and never retry.
package extract

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned when the Gemini credential is absent. This is
// a configuration error; nothing will work until the key is provided.
var ErrMissingAPIKey = errors.New("cheia API Gemini nu este configurată")

// Analyzer produces a structured record for each of the three upload kinds.
// The interface exists so pipelines and handlers can be tested with mocks.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, file File) (*DocumentAnalysis, error)
	AnalyzeContract(ctx context.Context, file File) (*ContractAnalysis, error)
	AnalyzeBankStatement(ctx context.Context, file File) (*BankStatementAnalysis, error)
}

// GeminiAnalyzer implements Analyzer against the Gemini API.
type GeminiAnalyzer struct {
	apiKey string
	model  string
}

// NewGeminiAnalyzer validates the credential up front and returns the
// analyzer. The model name is e.g. "gemini-2.5-flash".
func NewGeminiAnalyzer(apiKey, model string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &GeminiAnalyzer{apiKey: apiKey, model: model}, nil
}

// AnalyzeDocument extracts invoice/receipt fields from an accounting
// document.
func (g *GeminiAnalyzer) AnalyzeDocument(ctx context.Context, file File) (*DocumentAnalysis, error) {
	raw, err := g.generate(ctx, documentPrompt, file, 2048)
	if err != nil {
		return nil, err
	}
	var analysis DocumentAnalysis
	if err := decodeObject(raw, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AnalyzeContract extracts clauses, risk assessment and key dates from a
// contract.
func (g *GeminiAnalyzer) AnalyzeContract(ctx context.Context, file File) (*ContractAnalysis, error) {
	raw, err := g.generate(ctx, contractPrompt, file, 4096)
	if err != nil {
		return nil, err
	}
	var analysis ContractAnalysis
	if err := decodeObject(raw, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AnalyzeBankStatement extracts account details and the full transaction
// list from a bank statement.
func (g *GeminiAnalyzer) AnalyzeBankStatement(ctx context.Context, file File) (*BankStatementAnalysis, error) {
	raw, err := g.generate(ctx, bankStatementPrompt, file, 4096)
	if err != nil {
		return nil, err
	}
	var analysis BankStatementAnalysis
	if err := decodeObject(raw, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// generate sends one prompt plus the file bytes to the model and returns the
// textual reply. Low temperature keeps the extraction deterministic.
func (g *GeminiAnalyzer) generate(ctx context.Context, prompt string, file File, maxTokens int32) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("extract: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: file.MIMEType,
						Data:     file.Data,
					},
				},
			},
		},
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.1),
		TopK:            genai.Ptr[float32](32),
		TopP:            genai.Ptr[float32](1),
		MaxOutputTokens: maxTokens,
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", wrapAPIError(err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrNoJSON
	}
	return text, nil
}

// wrapAPIError maps HTTP failures onto the user-facing message categories.
// Callers do not distinguish these programmatically beyond the message.
func wrapAPIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("eroare API Gemini: %w", err)
	}
	switch apiErr.Code {
	case 503:
		return fmt.Errorf("serviciul Gemini este temporar indisponibil, încearcă din nou în câteva minute: %w", err)
	case 429:
		return fmt.Errorf("prea multe cereri, încearcă din nou în câteva secunde: %w", err)
	case 403:
		return fmt.Errorf("cheia API nu este validă sau nu are permisiuni: %w", err)
	default:
		return fmt.Errorf("eroare API Gemini: %d: %w", apiErr.Code, err)
	}
}
