package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateQuestionsFromModel(t *testing.T) {
	stub := scripted("What is a goroutine?\n- How do channels work?\n\nDescribe a race condition you debugged.")
	generator := NewQuestionGeneratorService(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), "Go Developer", "Backend role", 3)

	require.Len(t, questions, 3)
	assert.Equal(t, "What is a goroutine?", questions[0])
	assert.Equal(t, "How do channels work?", questions[1])
	assert.Equal(t, "Describe a race condition you debugged.", questions[2])
}

func TestGenerateQuestionsCapsAtRequestedCount(t *testing.T) {
	stub := scripted("Q1\nQ2\nQ3\nQ4\nQ5")
	generator := NewQuestionGeneratorService(stub, zap.NewNop())

	questions := generator.Generate(context.Background(), "Go Developer", "", 2)

	assert.Equal(t, []string{"Q1", "Q2"}, questions)
}

func TestGenerateQuestionsFallback(t *testing.T) {
	generator := NewQuestionGeneratorService(nil, zap.NewNop())

	questions := generator.Generate(context.Background(), "Data Engineer", "", 7)

	require.Len(t, questions, 7)
	assert.Equal(t, "Tell me about your experience related to Data Engineer.", questions[0])
	// the base set cycles when more questions are requested than exist
	assert.Equal(t, questions[0], questions[5])
}

func TestGenerateQuestionsFallbackOnModelError(t *testing.T) {
	generator := NewQuestionGeneratorService(failing(), zap.NewNop())

	questions := generator.Generate(context.Background(), "", "A role working on payments", 2)

	require.Len(t, questions, 2)
	assert.Contains(t, questions[0], "A role working on payments")
}

func TestGenerateQuestionsClampsCount(t *testing.T) {
	generator := NewQuestionGeneratorService(nil, zap.NewNop())

	assert.Len(t, generator.Generate(context.Background(), "X", "", -3), 1)
	assert.Len(t, generator.Generate(context.Background(), "X", "", 500), 20)
}
