package keyword

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"research-chatbot/pkg/llmprovider"
)

// Extract returns up to MaxKeywords vocabulary terms found in the text.
// An empty result is not an error: it means the text carries no term from
// the restricted vocabulary.
// Convention: Method accepts context.Context as first parameter
func (e *VocabExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: e.prompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: text},
		},
		Temperature: ExtractTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixExtract, err)
	}

	content := strings.TrimSpace(resp.Text)
	if content == "" {
		e.l.Debugf(ctx, "%s: no keywords for %q", LogPrefixExtract, text)
		return nil, nil
	}

	raw := parseCandidates(content)
	validated := e.validate(raw)

	e.l.Infof(ctx, "%s: extracted %d keywords: %v", LogPrefixExtract, len(validated), validated)
	return validated, nil
}

// parseCandidates handles both the requested CSV format and the JSON array
// some models return anyway.
func parseCandidates(content string) []string {
	var parts []string
	if strings.HasPrefix(content, "[") && strings.HasSuffix(content, "]") {
		if err := json.Unmarshal([]byte(content), &parts); err != nil {
			parts = strings.Split(content, ",")
		}
	} else {
		parts = strings.Split(content, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validate keeps only vocabulary terms: exact match first, then the first
// substring match over the sorted vocabulary. Order preserved, duplicates
// dropped, capped at MaxKeywords.
func (e *VocabExtractor) validate(candidates []string) []string {
	validated := make([]string, 0, MaxKeywords)
	seen := make(map[string]struct{}, MaxKeywords)

	add := func(term string) {
		if _, dup := seen[term]; dup {
			return
		}
		seen[term] = struct{}{}
		validated = append(validated, term)
	}

	for _, candidate := range candidates {
		if len(validated) == MaxKeywords {
			break
		}

		if _, ok := e.vocabSet[candidate]; ok {
			add(candidate)
			continue
		}

		for _, term := range e.vocabulary {
			if strings.Contains(term, candidate) || strings.Contains(candidate, term) {
				add(term)
				break
			}
		}
	}

	if len(validated) > MaxKeywords {
		validated = validated[:MaxKeywords]
	}
	return validated
}
