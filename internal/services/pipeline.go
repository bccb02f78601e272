package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentnavigator/backend/internal/models"
)

// PipelineService runs the fixed four-stage evaluation chain: JD analysis,
// resume screening, interview evaluation, score aggregation. Each stage
// consumes the prior stage's output and every stage degrades locally, so a
// run always produces a complete PipelineResult.
type PipelineService interface {
	EvaluateCandidate(ctx context.Context, jobDescription, resumeText string, interviewQA []models.QAPair) *models.PipelineResult
}

type pipelineService struct {
	jdAnalyzer         JDAnalyzerService
	resumeScreener     ResumeScreenerService
	interviewEvaluator InterviewEvaluatorService
	scoreAggregator    ScoreAggregatorService
	logger             *zap.Logger
}

func NewPipelineService(
	jdAnalyzer JDAnalyzerService,
	resumeScreener ResumeScreenerService,
	interviewEvaluator InterviewEvaluatorService,
	scoreAggregator ScoreAggregatorService,
	logger *zap.Logger,
) PipelineService {
	return &pipelineService{
		jdAnalyzer:         jdAnalyzer,
		resumeScreener:     resumeScreener,
		interviewEvaluator: interviewEvaluator,
		scoreAggregator:    scoreAggregator,
		logger:             logger,
	}
}

func (p *pipelineService) EvaluateCandidate(ctx context.Context, jobDescription, resumeText string, interviewQA []models.QAPair) *models.PipelineResult {
	// The run ID only correlates log lines; it is never part of the
	// result, which stays a pure function of the inputs.
	log := p.logger.With(zap.String("run_id", uuid.New().String()))

	log.Info("pipeline run starting", zap.Int("interview_questions", len(interviewQA)))

	jdAnalysis := p.jdAnalyzer.Analyze(ctx, jobDescription, "")
	resumeEval := p.resumeScreener.Screen(ctx, jdAnalysis, resumeText)
	interviewEval := p.interviewEvaluator.Evaluate(ctx, jdAnalysis, interviewQA)
	finalEval := p.scoreAggregator.Aggregate(ctx, jdAnalysis, resumeEval, interviewEval)

	log.Info("pipeline run complete",
		zap.Int("overall_score", finalEval.OverallScore),
		zap.String("recommendation", finalEval.Recommendation),
	)

	return &models.PipelineResult{
		JDAnalysis:      jdAnalysis,
		ResumeEval:      resumeEval,
		InterviewEval:   interviewEval,
		FinalEvaluation: finalEval,
	}
}
