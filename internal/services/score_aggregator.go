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

// Aggregation weights. When no interview answers were scored the resume
// signal carries the full weight instead of being averaged with a
// meaningless zero.
const (
	resumeWeight    = 0.5
	interviewWeight = 0.5
)

// ScoreAggregatorService merges the three upstream records into the final
// recommendation.
type ScoreAggregatorService interface {
	Aggregate(ctx context.Context, jd models.JobRequirements, resumeEval models.ResumeEvaluation, interviewEval models.InterviewEvaluation) models.FinalEvaluation
}

type scoreAggregatorService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewScoreAggregatorService(generator TextGenerator, logger *zap.Logger) ScoreAggregatorService {
	return &scoreAggregatorService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

func (s *scoreAggregatorService) Aggregate(ctx context.Context, jd models.JobRequirements, resumeEval models.ResumeEvaluation, interviewEval models.InterviewEvaluation) models.FinalEvaluation {
	resumeScore := resumeEval.SkillMatch
	interviewScore := interviewEval.OverallScore

	overall := resumeScore
	if len(interviewEval.QuestionScores) > 0 {
		overall = clampScore(math.Round(float64(resumeScore)*resumeWeight + float64(interviewScore)*interviewWeight))
	}

	recommendation := RecommendationFor(overall)

	evaluation := models.FinalEvaluation{
		OverallScore:   overall,
		ResumeScore:    resumeScore,
		InterviewScore: interviewScore,
		Recommendation: recommendation,
		Summary:        s.buildSummary(ctx, jd, resumeEval, interviewEval, overall, recommendation),
		KeyStrengths:   buildKeyStrengths(resumeEval, interviewEval),
		KeyConcerns:    buildKeyConcerns(resumeEval, interviewEval),
	}

	s.logger.Info("final evaluation complete",
		zap.Int("overall_score", overall),
		zap.String("recommendation", recommendation),
	)

	return evaluation
}

// RecommendationFor maps an overall score to the hiring recommendation
// using fixed inclusive lower bounds.
func RecommendationFor(overallScore int) string {
	switch {
	case overallScore >= 80:
		return "Strong Hire"
	case overallScore >= 65:
		return "Hire"
	case overallScore >= 50:
		return "Maybe"
	default:
		return "No Hire"
	}
}

func (s *scoreAggregatorService) buildSummary(ctx context.Context, jd models.JobRequirements, resumeEval models.ResumeEvaluation, interviewEval models.InterviewEvaluation, overall int, recommendation string) string {
	fallback := fallbackSummary(jd, resumeEval, interviewEval, overall, recommendation)

	if s.generator == nil {
		return fallback
	}

	jdJSON, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		return fallback
	}
	resumeJSON, err := json.MarshalIndent(resumeEval, "", "  ")
	if err != nil {
		return fallback
	}
	interviewJSON, err := json.MarshalIndent(interviewEval, "", "  ")
	if err != nil {
		return fallback
	}

	prompt := s.promptBuilder.BuildSummaryPrompt(string(jdJSON), string(resumeJSON), string(interviewJSON), overall, recommendation)

	summary, err := s.generator.GenerateText(ctx, prompt, 0.5)
	if err != nil || strings.TrimSpace(summary) == "" {
		s.logger.Warn("summary generation failed, using templated summary", zap.Error(err))
		return fallback
	}

	return strings.TrimSpace(summary)
}

func fallbackSummary(jd models.JobRequirements, resumeEval models.ResumeEvaluation, interviewEval models.InterviewEvaluation, overall int, recommendation string) string {
	role := strings.TrimSpace(jd.Role)
	if role == "" {
		role = "the position"
	}

	return fmt.Sprintf("Candidate evaluated for %s. Resume shows %d%% skill match with %d key skills. Interview performance scored %d%%. Overall assessment: %d%% (%s).",
		role, resumeEval.SkillMatch, len(resumeEval.MatchedSkills), interviewEval.OverallScore, overall, recommendation)
}

// buildKeyStrengths combines resume-derived sentences with interview
// strengths verbatim, resume first, deduplicated.
func buildKeyStrengths(resumeEval models.ResumeEvaluation, interviewEval models.InterviewEvaluation) []string {
	strengths := []string{}
	if len(resumeEval.MatchedSkills) > 0 {
		strengths = append(strengths, fmt.Sprintf("Strong skill match: %s", joinFirst(resumeEval.MatchedSkills, 3)))
	}
	strengths = append(strengths, interviewEval.Strengths...)
	return dedupeStrings(strengths)
}

func buildKeyConcerns(resumeEval models.ResumeEvaluation, interviewEval models.InterviewEvaluation) []string {
	concerns := []string{}
	if len(resumeEval.MissingSkills) > 0 {
		concerns = append(concerns, fmt.Sprintf("Missing skills: %s", joinFirst(resumeEval.MissingSkills, 3)))
	}
	concerns = append(concerns, interviewEval.Concerns...)
	return dedupeStrings(concerns)
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
