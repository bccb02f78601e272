package services

import (
	"context"
	"errors"
)

// stubGenerator plays back scripted responses in call order so pipeline
// tests run fully deterministic without network access.
type stubGenerator struct {
	responses []stubResponse
	prompts   []string
}

type stubResponse struct {
	text string
	err  error
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	s.prompts = append(s.prompts, prompt)

	if len(s.prompts) > len(s.responses) {
		return "", errors.New("no scripted response left")
	}

	r := s.responses[len(s.prompts)-1]
	return r.text, r.err
}

func scripted(texts ...string) *stubGenerator {
	responses := make([]stubResponse, 0, len(texts))
	for _, text := range texts {
		responses = append(responses, stubResponse{text: text})
	}
	return &stubGenerator{responses: responses}
}

func failing() *stubGenerator {
	return &stubGenerator{}
}
