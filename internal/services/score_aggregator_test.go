package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"talentnavigator/backend/internal/models"
)

func interviewEvalWithScore(score int, questions int) models.InterviewEvaluation {
	eval := models.DefaultInterviewEvaluation()
	eval.OverallScore = score
	for i := 0; i < questions; i++ {
		eval.QuestionScores = append(eval.QuestionScores, models.QuestionScore{Question: "Q", Score: score})
	}
	return eval
}

func TestAggregateWeightsBothSignals(t *testing.T) {
	aggregator := NewScoreAggregatorService(nil, zap.NewNop())

	resume := models.ResumeEvaluation{SkillMatch: 80, MatchedSkills: []string{"Go"}, MissingSkills: []string{}}
	interview := interviewEvalWithScore(60, 2)

	final := aggregator.Aggregate(context.Background(), jdWithSkills("Go"), resume, interview)

	assert.Equal(t, 70, final.OverallScore)
	assert.Equal(t, "Hire", final.Recommendation)
	assert.Equal(t, 80, final.ResumeScore)
	assert.Equal(t, 60, final.InterviewScore)
}

func TestAggregateWithoutInterviewUsesResumeScore(t *testing.T) {
	aggregator := NewScoreAggregatorService(nil, zap.NewNop())

	resume := models.ResumeEvaluation{SkillMatch: 67, MatchedSkills: []string{}, MissingSkills: []string{}}

	final := aggregator.Aggregate(context.Background(), jdWithSkills("Go"), resume, models.DefaultInterviewEvaluation())

	assert.Equal(t, 67, final.OverallScore)
	assert.Equal(t, "Hire", final.Recommendation)
	assert.Equal(t, 0, final.InterviewScore)
}

func TestRecommendationBoundaries(t *testing.T) {
	cases := map[int]string{
		79: "Hire",
		80: "Strong Hire",
		64: "Maybe",
		65: "Hire",
		49: "No Hire",
		50: "Maybe",
	}

	for score, expected := range cases {
		assert.Equal(t, expected, RecommendationFor(score), "score %d", score)
	}
}

func TestKeyStrengthsAndConcernsOrdering(t *testing.T) {
	aggregator := NewScoreAggregatorService(nil, zap.NewNop())

	resume := models.ResumeEvaluation{
		SkillMatch:    70,
		MatchedSkills: []string{"Python", "Django", "AWS", "Docker"},
		MissingSkills: []string{"Kubernetes"},
	}
	interview := interviewEvalWithScore(70, 1)
	interview.Strengths = []string{"Clear communicator", "Clear communicator"}
	interview.Concerns = []string{"Limited ops exposure"}

	final := aggregator.Aggregate(context.Background(), jdWithSkills("Python"), resume, interview)

	assert.Equal(t, []string{
		"Strong skill match: Python, Django, AWS",
		"Clear communicator",
	}, final.KeyStrengths)
	assert.Equal(t, []string{
		"Missing skills: Kubernetes",
		"Limited ops exposure",
	}, final.KeyConcerns)
}

func TestSummaryFromModel(t *testing.T) {
	stub := scripted("A strong candidate overall with minor gaps.")
	aggregator := NewScoreAggregatorService(stub, zap.NewNop())

	resume := models.ResumeEvaluation{SkillMatch: 90, MatchedSkills: []string{}, MissingSkills: []string{}}

	final := aggregator.Aggregate(context.Background(), jdWithSkills("Go"), resume, interviewEvalWithScore(90, 1))

	assert.Equal(t, "A strong candidate overall with minor gaps.", final.Summary)
	assert.Contains(t, stub.prompts[0], "COMPUTED OVERALL SCORE: 90")
}

func TestSummaryFallbackOnModelFailure(t *testing.T) {
	aggregator := NewScoreAggregatorService(failing(), zap.NewNop())

	resume := models.ResumeEvaluation{SkillMatch: 67, MatchedSkills: []string{"Python", "Django"}, MissingSkills: []string{}}

	final := aggregator.Aggregate(context.Background(), jdWithSkills("Go"), resume, models.DefaultInterviewEvaluation())

	assert.Contains(t, final.Summary, "Senior Python Developer")
	assert.Contains(t, final.Summary, "67%")
	assert.Contains(t, final.Summary, "Hire")
}

func TestSummaryFallbackUnknownRole(t *testing.T) {
	aggregator := NewScoreAggregatorService(nil, zap.NewNop())

	jd := models.JobRequirements{}
	jd.Normalize()
	resume := models.ResumeEvaluation{SkillMatch: 10, MatchedSkills: []string{}, MissingSkills: []string{}}

	final := aggregator.Aggregate(context.Background(), jd, resume, models.DefaultInterviewEvaluation())

	assert.Contains(t, final.Summary, "the position")
	assert.Equal(t, "No Hire", final.Recommendation)
}
