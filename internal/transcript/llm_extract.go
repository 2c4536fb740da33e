package transcript

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/gradpath/internal/catalog"
	"github.com/abhisek/gradpath/internal/llm"
)

const systemPrompt = `You are an academic records assistant. You read raw text copied
from a university transcript or course plan and list every course that
appears in it. Report each course exactly once, in document order. Do
not invent courses that are not in the text. When a name or credit is
not stated, use an empty name and a credit of 0.`

// ExtractorConfig tunes the LLM extraction request.
type ExtractorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultExtractorConfig returns sensible extraction settings.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{MaxTokens: 2048, Temperature: 0}
}

// Extractor pulls course lists out of messy transcript text using an
// LLM provider. Use Scan for clean text; the extractor handles OCR
// noise and unusual layouts the regex scanner misses.
type Extractor struct {
	provider llm.Provider
	config   ExtractorConfig
}

// NewExtractor creates an Extractor with the given provider and config.
func NewExtractor(provider llm.Provider, cfg ExtractorConfig) *Extractor {
	return &Extractor{provider: provider, config: cfg}
}

// courseListOutput is the raw LLM response before normalization.
type courseListOutput struct {
	Courses []struct {
		Code   string  `json:"code"`
		Name   string  `json:"name"`
		Credit float64 `json:"credit"`
	} `json:"courses"`
}

// Extract asks the provider for the course list in text and folds the
// answer into the same Extraction shape the deterministic scanner
// produces, so callers can treat both paths alike.
func (e *Extractor) Extract(ctx context.Context, cat *catalog.Catalog, text string) (Extraction, error) {
	ctx = llm.WithPurpose(ctx, "transcript-extract")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(text)},
		},
		Schema:      CourseListSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return Extraction{}, fmt.Errorf("LLM extraction failed: %w", err)
	}

	var raw courseListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Extraction{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	var ex Extraction
	seen := make(map[string]bool)
	for _, c := range raw.Courses {
		code := catalog.NormalizeCode(c.Code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		ex.Codes = append(ex.Codes, code)

		if cat != nil {
			if course, ok := cat.Find(code); ok {
				ex.Matched = append(ex.Matched, Course{
					Code:       code,
					Name:       course.Name,
					Credit:     course.Credit,
					Source:     SourceCatalog,
					Confidence: 0.95,
				})
				continue
			}
		}

		name := c.Name
		if name == "" {
			name = "Unknown"
		}
		credit := c.Credit
		if credit == 0 {
			credit = defaultCredit
		}
		ex.Unknown = append(ex.Unknown, Course{
			Code:       code,
			Name:       name,
			Credit:     credit,
			Source:     SourceText,
			Confidence: 0.5,
		})
	}

	return ex, nil
}

func buildUserMessage(text string) string {
	return fmt.Sprintf("List every course in the following transcript text.\n\n---\n%s\n---", text)
}
