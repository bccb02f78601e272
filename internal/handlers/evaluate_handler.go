package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"talentnavigator/backend/internal/models"
	"talentnavigator/backend/internal/services"
)

type EvaluateHandler struct {
	pipeline  services.PipelineService
	extractor services.FileExtractorService
}

func NewEvaluateHandler(pipeline services.PipelineService, extractor services.FileExtractorService) *EvaluateHandler {
	return &EvaluateHandler{
		pipeline:  pipeline,
		extractor: extractor,
	}
}

// HandleEvaluateCandidate handles POST /evaluate-candidate
func (h *EvaluateHandler) HandleEvaluateCandidate(c *fiber.Ctx) error {
	var req models.EvaluateCandidateRequest

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

	result := h.pipeline.EvaluateCandidate(c.Context(), req.JobDescription, req.ResumeText, req.InterviewQA)

	return c.JSON(result)
}

// HandleEvaluateCandidateFile handles POST /evaluate-candidate-file
func (h *EvaluateHandler) HandleEvaluateCandidateFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	var interviewQA []models.QAPair
	if raw := c.FormValue("interview_qa"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &interviewQA); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "interview_qa must be a JSON array of question/answer pairs",
			})
		}
	}

	resumeText, err := h.extractor.ExtractUpload(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from file: %v", err),
		})
	}

	result := h.pipeline.EvaluateCandidate(c.Context(), jobDescription, resumeText, interviewQA)

	return c.JSON(result)
}
