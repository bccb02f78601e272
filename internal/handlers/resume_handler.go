package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"talentnavigator/backend/internal/models"
	"talentnavigator/backend/internal/services"
)

type ResumeHandler struct {
	jdAnalyzer     services.JDAnalyzerService
	resumeScreener services.ResumeScreenerService
	extractor      services.FileExtractorService
}

func NewResumeHandler(
	jdAnalyzer services.JDAnalyzerService,
	resumeScreener services.ResumeScreenerService,
	extractor services.FileExtractorService,
) *ResumeHandler {
	return &ResumeHandler{
		jdAnalyzer:     jdAnalyzer,
		resumeScreener: resumeScreener,
		extractor:      extractor,
	}
}

// HandleScreenResume handles POST /screen-resume
func (h *ResumeHandler) HandleScreenResume(c *fiber.Ctx) error {
	var req models.ScreenResumeRequest

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

	return c.JSON(h.screen(c, req.JobDescription, req.ResumeText))
}

// HandleScreenResumeFile handles POST /screen-resume-file
func (h *ResumeHandler) HandleScreenResumeFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	resumeText, err := h.extractor.ExtractUpload(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from file: %v", err),
		})
	}

	return c.JSON(h.screen(c, c.FormValue("job_description"), resumeText))
}

func (h *ResumeHandler) screen(c *fiber.Ctx, jobDescription, resumeText string) models.ScreenResumeResponse {
	jd := h.jdAnalyzer.Analyze(c.Context(), jobDescription, "")
	evaluation := h.resumeScreener.Screen(c.Context(), jd, resumeText)

	return models.ScreenResumeResponse{
		SkillMatch:    evaluation.SkillMatch,
		MatchScore:    evaluation.SkillMatch,
		MatchedSkills: evaluation.MatchedSkills,
		MissingSkills: evaluation.MissingSkills,
		Comment:       evaluation.Comment,
		Summary:       evaluation.Comment,
	}
}
