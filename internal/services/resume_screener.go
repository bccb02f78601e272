package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"talentnavigator/backend/internal/models"
)

// ResumeScreenerService scores a resume against analyzed job requirements.
// When the model is unavailable or returns garbage it degrades to a
// deterministic keyword-overlap heuristic.
type ResumeScreenerService interface {
	Screen(ctx context.Context, jd models.JobRequirements, resumeText string) models.ResumeEvaluation
}

type resumeScreenerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewResumeScreenerService(generator TextGenerator, logger *zap.Logger) ResumeScreenerService {
	return &resumeScreenerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

type resumeScreenPayload struct {
	SkillMatch    float64  `json:"skill_match"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Comment       string   `json:"comment"`
}

func (s *resumeScreenerService) Screen(ctx context.Context, jd models.JobRequirements, resumeText string) models.ResumeEvaluation {
	if s.generator == nil {
		return keywordScreen(jd, resumeText)
	}

	jdJSON, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode jd analysis, using keyword fallback", zap.Error(err))
		return keywordScreen(jd, resumeText)
	}

	prompt := s.promptBuilder.BuildResumeScreeningPrompt(string(jdJSON), resumeText)

	response, err := s.generator.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		s.logger.Warn("resume screening model call failed, using keyword fallback", zap.Error(err))
		return keywordScreen(jd, resumeText)
	}

	var payload resumeScreenPayload
	if err := decodeModelJSON(response, &payload); err != nil {
		s.logger.Warn("resume screening response not parseable, using keyword fallback", zap.Error(err))
		return keywordScreen(jd, resumeText)
	}

	evaluation := models.ResumeEvaluation{
		SkillMatch:    clampScore(payload.SkillMatch),
		MatchedSkills: dedupeStrings(payload.MatchedSkills),
		MissingSkills: dedupeStrings(payload.MissingSkills),
		Comment:       strings.TrimSpace(payload.Comment),
	}
	if evaluation.Comment == "" {
		evaluation.Comment = "Evaluation completed."
	}

	s.logger.Info("resume screening complete",
		zap.Int("skill_match", evaluation.SkillMatch),
		zap.Int("matched", len(evaluation.MatchedSkills)),
	)

	return evaluation
}

// keywordScreen is the deterministic degraded path: partition the required
// skills by case-insensitive substring presence in the resume text.
func keywordScreen(jd models.JobRequirements, resumeText string) models.ResumeEvaluation {
	resumeLower := strings.ToLower(resumeText)

	matched := []string{}
	missing := []string{}
	for _, skill := range jd.RequiredSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if strings.Contains(resumeLower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	total := len(matched) + len(missing)
	skillMatch := 0
	if total > 0 {
		skillMatch = int(math.Round(float64(len(matched)) / float64(total) * 100))
	}

	return models.ResumeEvaluation{
		SkillMatch:    skillMatch,
		MatchedSkills: matched,
		MissingSkills: missing,
		Comment: fmt.Sprintf("Skill match: %d/%d required skills found (%d%%).",
			len(matched), total, skillMatch),
	}
}
