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

// neutralAnswerScore is assigned when a single answer cannot be evaluated;
// the rest of the batch continues.
const neutralAnswerScore = 50

// AnswerEvaluation is the model's verdict on one interview answer.
type AnswerEvaluation struct {
	Score     int
	Feedback  string
	Strengths []string
	Concerns  []string
}

// InterviewEvaluatorService scores interview answers against the job
// requirements, one model call per answer.
type InterviewEvaluatorService interface {
	Evaluate(ctx context.Context, jd models.JobRequirements, qa []models.QAPair) models.InterviewEvaluation
	ScoreAnswer(ctx context.Context, jd models.JobRequirements, question, answer string, rubrics []string) (AnswerEvaluation, error)
}

type interviewEvaluatorService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewInterviewEvaluatorService(generator TextGenerator, logger *zap.Logger) InterviewEvaluatorService {
	return &interviewEvaluatorService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

func (s *interviewEvaluatorService) Evaluate(ctx context.Context, jd models.JobRequirements, qa []models.QAPair) models.InterviewEvaluation {
	if len(qa) == 0 {
		return models.DefaultInterviewEvaluation()
	}

	questionScores := make([]models.QuestionScore, 0, len(qa))
	strengths := []string{}
	concerns := []string{}
	totalScore := 0

	for i, pair := range qa {
		answer, err := s.ScoreAnswer(ctx, jd, pair.Question, pair.Answer, nil)
		if err != nil {
			s.logger.Warn("answer scoring failed, assigning neutral score",
				zap.Int("question_index", i),
				zap.Error(err),
			)
			answer = AnswerEvaluation{
				Score:    neutralAnswerScore,
				Feedback: "Evaluation failed for this answer; a neutral score was assigned.",
			}
		}

		totalScore += answer.Score
		questionScores = append(questionScores, models.QuestionScore{
			Question: pair.Question,
			Score:    answer.Score,
			Feedback: answer.Feedback,
		})
		strengths = append(strengths, answer.Strengths...)
		concerns = append(concerns, answer.Concerns...)
	}

	overall := int(math.Round(float64(totalScore) / float64(len(qa))))

	evaluation := models.InterviewEvaluation{
		OverallScore:   overall,
		QuestionScores: questionScores,
		Strengths:      dedupeStrings(strengths),
		Concerns:       dedupeStrings(concerns),
	}

	s.logger.Info("interview evaluation complete",
		zap.Int("overall_score", overall),
		zap.Int("questions", len(qa)),
	)

	return evaluation
}

type answerScorePayload struct {
	Score     float64  `json:"score"`
	Feedback  string   `json:"feedback"`
	Strengths []string `json:"strengths"`
	Concerns  []string `json:"concerns"`
}

func (s *interviewEvaluatorService) ScoreAnswer(ctx context.Context, jd models.JobRequirements, question, answer string, rubrics []string) (AnswerEvaluation, error) {
	if s.generator == nil {
		return AnswerEvaluation{}, fmt.Errorf("text generator is not configured")
	}

	jdJSON, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		return AnswerEvaluation{}, fmt.Errorf("failed to encode jd analysis: %w", err)
	}

	prompt := s.promptBuilder.BuildAnswerScorePrompt(string(jdJSON), question, answer, rubrics)

	response, err := s.generator.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return AnswerEvaluation{}, fmt.Errorf("failed to score answer: %w", err)
	}

	var payload answerScorePayload
	if err := decodeModelJSON(response, &payload); err != nil {
		return AnswerEvaluation{}, err
	}

	feedback := strings.TrimSpace(payload.Feedback)
	if feedback == "" {
		feedback = "No feedback provided."
	}

	return AnswerEvaluation{
		Score:     clampScore(payload.Score),
		Feedback:  feedback,
		Strengths: dedupeStrings(payload.Strengths),
		Concerns:  dedupeStrings(payload.Concerns),
	}, nil
}
