package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"talentnavigator/backend/internal/models"
)

func TestEvaluateEmptyQuestionList(t *testing.T) {
	evaluator := NewInterviewEvaluatorService(scripted(), zap.NewNop())

	eval := evaluator.Evaluate(context.Background(), jdWithSkills("Python"), nil)

	assert.Equal(t, 0, eval.OverallScore)
	assert.NotNil(t, eval.QuestionScores)
	assert.Empty(t, eval.QuestionScores)
	assert.NotNil(t, eval.Strengths)
	assert.Empty(t, eval.Strengths)
	assert.NotNil(t, eval.Concerns)
	assert.Empty(t, eval.Concerns)
}

func TestEvaluateScoresEachQuestion(t *testing.T) {
	stub := scripted(
		`{"score": 80, "feedback": "Thorough answer.", "strengths": ["Django depth"], "concerns": []}`,
		`{"score": 60, "feedback": "Lacked examples.", "strengths": ["Django depth"], "concerns": ["Few concrete examples"]}`,
	)
	evaluator := NewInterviewEvaluatorService(stub, zap.NewNop())

	qa := []models.QAPair{
		{Question: "Describe your Django experience", Answer: "6 years of Django..."},
		{Question: "How do you optimize databases?", Answer: "Indexing and caching..."},
	}

	eval := evaluator.Evaluate(context.Background(), jdWithSkills("Python", "Django"), qa)

	require.Len(t, eval.QuestionScores, 2)
	assert.Equal(t, "Describe your Django experience", eval.QuestionScores[0].Question)
	assert.Equal(t, 80, eval.QuestionScores[0].Score)
	assert.Equal(t, 60, eval.QuestionScores[1].Score)
	assert.Equal(t, 70, eval.OverallScore)

	// merged across questions, duplicates removed
	assert.Equal(t, []string{"Django depth"}, eval.Strengths)
	assert.Equal(t, []string{"Few concrete examples"}, eval.Concerns)

	require.Len(t, stub.prompts, 2)
	assert.Contains(t, stub.prompts[0], "Relevance to job requirements (40%)")
	assert.Contains(t, stub.prompts[0], "Describe your Django experience")
}

func TestEvaluatePartialFailureContinuesBatch(t *testing.T) {
	stub := &stubGenerator{responses: []stubResponse{
		{text: `{"score": 80, "feedback": "Good."}`},
		{err: assert.AnError},
		{text: `{"score": 60, "feedback": "Okay."}`},
	}}
	evaluator := NewInterviewEvaluatorService(stub, zap.NewNop())

	qa := []models.QAPair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
		{Question: "Q3", Answer: "A3"},
	}

	eval := evaluator.Evaluate(context.Background(), jdWithSkills("Python"), qa)

	require.Len(t, eval.QuestionScores, 3)
	assert.Equal(t, 80, eval.QuestionScores[0].Score)
	assert.Equal(t, neutralAnswerScore, eval.QuestionScores[1].Score)
	assert.Contains(t, eval.QuestionScores[1].Feedback, "Evaluation failed")
	assert.Equal(t, 60, eval.QuestionScores[2].Score)

	// round((80 + 50 + 60) / 3) = 63
	assert.Equal(t, 63, eval.OverallScore)
}

func TestEvaluateRoundsMeanToNearest(t *testing.T) {
	stub := scripted(
		`{"score": 75, "feedback": "a"}`,
		`{"score": 76, "feedback": "b"}`,
	)
	evaluator := NewInterviewEvaluatorService(stub, zap.NewNop())

	eval := evaluator.Evaluate(context.Background(), jdWithSkills("Go"), []models.QAPair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	})

	// 75.5 rounds up
	assert.Equal(t, 76, eval.OverallScore)
}

func TestScoreAnswerWithoutGenerator(t *testing.T) {
	evaluator := NewInterviewEvaluatorService(nil, zap.NewNop())

	_, err := evaluator.ScoreAnswer(context.Background(), jdWithSkills("Go"), "Q", "A", nil)

	assert.Error(t, err)
}

func TestScoreAnswerClampsAndDefaults(t *testing.T) {
	stub := scripted(`{"score": 250, "feedback": "  "}`)
	evaluator := NewInterviewEvaluatorService(stub, zap.NewNop())

	answer, err := evaluator.ScoreAnswer(context.Background(), jdWithSkills("Go"), "Q", "A", []string{"clarity"})

	require.NoError(t, err)
	assert.Equal(t, 100, answer.Score)
	assert.Equal(t, "No feedback provided.", answer.Feedback)
	assert.Contains(t, stub.prompts[0], "clarity")
}
