package handlers

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentnavigator/backend/internal/models"
	"talentnavigator/backend/internal/services"
)

const defaultNumQuestions = 5

type InterviewHandler struct {
	questionGenerator  services.QuestionGeneratorService
	interviewEvaluator services.InterviewEvaluatorService
	jdAnalyzer         services.JDAnalyzerService
}

func NewInterviewHandler(
	questionGenerator services.QuestionGeneratorService,
	interviewEvaluator services.InterviewEvaluatorService,
	jdAnalyzer services.JDAnalyzerService,
) *InterviewHandler {
	return &InterviewHandler{
		questionGenerator:  questionGenerator,
		interviewEvaluator: interviewEvaluator,
		jdAnalyzer:         jdAnalyzer,
	}
}

// HandleGenerateInterview handles POST /generate-interview
func (h *InterviewHandler) HandleGenerateInterview(c *fiber.Ctx) error {
	var req models.GenerateInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.NumQuestions == 0 {
		req.NumQuestions = defaultNumQuestions
	}

	questions := h.questionGenerator.Generate(c.Context(), req.JobTitle, req.Description, req.NumQuestions)

	return c.JSON(models.GenerateInterviewResponse{Questions: questions})
}

// HandleScoreAnswer handles POST /score-answer
func (h *InterviewHandler) HandleScoreAnswer(c *fiber.Ctx) error {
	var req models.ScoreAnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if msg := validateRequest(req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	jd := h.jdAnalyzer.Analyze(c.Context(), req.JobDescription, "")

	answer, err := h.interviewEvaluator.ScoreAnswer(c.Context(), jd, req.QuestionText, req.AnswerText, req.Rubrics)
	if err != nil {
		// Deterministic degraded scoring keyed on answer length.
		score, feedback := lengthHeuristicScore(req.AnswerText)
		return c.JSON(models.ScoreAnswerResponse{Score: score, Feedback: feedback})
	}

	return c.JSON(models.ScoreAnswerResponse{Score: answer.Score, Feedback: answer.Feedback})
}

func lengthHeuristicScore(answerText string) (int, string) {
	length := len(strings.TrimSpace(answerText))

	score := int(math.Round(float64(length) / 500.0 * 100))
	if score > 100 {
		score = 100
	}

	feedback := "Answer length is reasonable. Consider adding more concrete examples."
	if length < 100 {
		feedback = "Answer is short."
	}

	return score, feedback
}
