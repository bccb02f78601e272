package services

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"talentnavigator/backend/internal/models"
)

// JDAnalyzerService extracts structured job requirements from a free-text
// job description. It never fails: downstream stages always receive a
// well-formed JobRequirements value.
type JDAnalyzerService interface {
	Analyze(ctx context.Context, description, titleHint string) models.JobRequirements
}

type jdAnalyzerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewJDAnalyzerService(generator TextGenerator, logger *zap.Logger) JDAnalyzerService {
	return &jdAnalyzerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

func (s *jdAnalyzerService) Analyze(ctx context.Context, description, titleHint string) models.JobRequirements {
	jd := cleanText(description)

	if jd == "" || s.generator == nil {
		return fallbackJobRequirements(titleHint)
	}

	prompt := s.promptBuilder.BuildJDAnalysisPrompt(jd)

	response, err := s.generator.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		s.logger.Warn("jd analysis model call failed, using fallback", zap.Error(err))
		return fallbackJobRequirements(titleHint)
	}

	var requirements models.JobRequirements
	if err := decodeModelJSON(response, &requirements); err != nil {
		s.logger.Warn("jd analysis response not parseable, using fallback", zap.Error(err))
		return fallbackJobRequirements(titleHint)
	}

	requirements.Normalize()
	if strings.TrimSpace(requirements.Role) == "" {
		requirements.Role = roleOrUnknown(titleHint)
	}

	s.logger.Info("jd analysis complete",
		zap.String("role", requirements.Role),
		zap.Int("required_skills", len(requirements.RequiredSkills)),
	)

	return requirements
}

func fallbackJobRequirements(titleHint string) models.JobRequirements {
	requirements := models.JobRequirements{Role: roleOrUnknown(titleHint)}
	requirements.Normalize()
	return requirements
}

func roleOrUnknown(titleHint string) string {
	if hint := strings.TrimSpace(titleHint); hint != "" {
		return hint
	}
	return "Unknown"
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	wordPattern       = regexp.MustCompile(`\w+`)
)

// cleanText collapses runs of whitespace so prompts stay compact.
func cleanText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// CountWords reports the number of word tokens in the text. Exposed for the
// informational word_count field on the JD analysis endpoint.
func CountWords(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

// TopSkills returns up to limit deduplicated skills, required skills first,
// then tools.
func TopSkills(jd models.JobRequirements, limit int) []string {
	combined := dedupeStrings(append(append([]string{}, jd.RequiredSkills...), jd.Tools...))
	if len(combined) > limit {
		combined = combined[:limit]
	}
	return combined
}
