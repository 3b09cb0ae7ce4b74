package ats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akulikov/careerhub/pkg/document"
	"github.com/akulikov/careerhub/pkg/llm"
)

const scorePromptTemplate = `Act like an experienced ATS with expertise in software engineering, data science, and big data.
Evaluate the resume against the given job description.
Provide a JSON response in the format:
{"JD Match":"%%", "MissingKeywords":[], "Profile Summary":""}

IMPORTANT: Return ONLY the JSON. No additional text, notes, or markdown formatting.

Resume: %s
Job Description: %s`

// ScoringService describes the application use case for resume/JD scoring.
type ScoringService interface {
	Score(ctx context.Context, filename string, data []byte, jobDescription string) (Result, error)
}

type scoringService struct {
	llm            llm.TextModel
	maxPromptChars int
}

// NewScoringService creates the default implementation.
func NewScoringService(model llm.TextModel) ScoringService {
	return &scoringService{
		llm:            model,
		maxPromptChars: 12_000,
	}
}

func (s *scoringService) Score(ctx context.Context, filename string, data []byte, jobDescription string) (Result, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return Result{}, fmt.Errorf("job description is required")
	}
	text, err := document.ExtractText(filename, data)
	if err != nil {
		return Result{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("empty resume content")
	}
	excerpted := false
	if len(text) > s.maxPromptChars {
		text = text[:s.maxPromptChars]
		excerpted = true
	}

	raw, err := s.llm.GenerateText(ctx, fmt.Sprintf(scorePromptTemplate, text, jobDescription))
	if err != nil {
		return Result{}, fmt.Errorf("ai processing failed: %w", err)
	}

	var sc Score
	if err := json.Unmarshal([]byte(llm.StripCodeFence(raw)), &sc); err != nil {
		return Result{}, fmt.Errorf("failed to parse ai response: %w", err)
	}
	if sc.MissingKeywords == nil {
		sc.MissingKeywords = []string{}
	}
	return Result{
		Score:     sc,
		Filename:  filename,
		CharsUsed: len(text),
		Excerpted: excerpted,
	}, nil
}
