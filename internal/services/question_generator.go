package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	minInterviewQuestions = 1
	maxInterviewQuestions = 20
)

// QuestionGeneratorService produces interview questions for a role. The
// degraded path cycles a fixed question set so the endpoint stays useful
// without model access.
type QuestionGeneratorService interface {
	Generate(ctx context.Context, jobTitle, description string, numQuestions int) []string
}

type questionGeneratorService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewQuestionGeneratorService(generator TextGenerator, logger *zap.Logger) QuestionGeneratorService {
	return &questionGeneratorService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

func (s *questionGeneratorService) Generate(ctx context.Context, jobTitle, description string, numQuestions int) []string {
	n := clampQuestionCount(numQuestions)

	if s.generator == nil {
		return fallbackQuestions(jobTitle, description, n)
	}

	prompt := s.promptBuilder.BuildInterviewQuestionsPrompt(jobTitle, description, n)

	response, err := s.generator.GenerateText(ctx, prompt, 0.5)
	if err != nil {
		s.logger.Warn("question generation failed, using fallback set", zap.Error(err))
		return fallbackQuestions(jobTitle, description, n)
	}

	questions := []string{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.Trim(line, "- \t")
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == n {
			break
		}
	}

	if len(questions) == 0 {
		return fallbackQuestions(jobTitle, description, n)
	}

	return questions
}

func clampQuestionCount(n int) int {
	if n < minInterviewQuestions {
		return minInterviewQuestions
	}
	if n > maxInterviewQuestions {
		return maxInterviewQuestions
	}
	return n
}

func fallbackQuestions(jobTitle, description string, n int) []string {
	title := strings.TrimSpace(jobTitle)
	if title == "" {
		title = strings.TrimSpace(description)
	}
	if title == "" {
		title = "Candidate"
	}

	base := []string{
		fmt.Sprintf("Tell me about your experience related to %s.", title),
		"Describe a challenging problem you solved recently.",
		"How do you prioritize tasks when working under pressure?",
		"Explain a project where you worked with a team. What was your role?",
		"How do you approach debugging and root-cause analysis?",
	}

	questions := make([]string, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, base[i%len(base)])
	}
	return questions
}
