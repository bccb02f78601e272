package handlers

import (
	"github.com/gofiber/fiber/v2"

	"talentnavigator/backend/internal/models"
	"talentnavigator/backend/internal/services"
)

type JDHandler struct {
	jdAnalyzer   services.JDAnalyzerService
	modelEnabled bool
}

func NewJDHandler(jdAnalyzer services.JDAnalyzerService, modelEnabled bool) *JDHandler {
	return &JDHandler{
		jdAnalyzer:   jdAnalyzer,
		modelEnabled: modelEnabled,
	}
}

// HandleAnalyzeJD handles POST /analyze-jd
func (h *JDHandler) HandleAnalyzeJD(c *fiber.Ctx) error {
	var req models.AnalyzeJDRequest

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

	jd := h.jdAnalyzer.Analyze(c.Context(), req.Description, req.JobTitle)

	notes := "extracted by gemini"
	if !h.modelEnabled {
		notes = "gemini not configured, deterministic defaults applied"
	}

	return c.JSON(models.AnalyzeJDResponse{
		JobRequirements: jd,
		WordCount:       services.CountWords(req.Description),
		TopSkills:       services.TopSkills(jd, 8),
		Notes:           notes,
	})
}
