package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildJDAnalysisPrompt creates the prompt for extracting structured job
// requirements from a free-text job description.
func (pb *PromptBuilder) BuildJDAnalysisPrompt(description string) string {
	return fmt.Sprintf(`You are a helpful assistant that extracts structured information from a job description.
Given the following job description, produce a JSON object ONLY (no explanation or extra text) with the exact keys:
role, required_skills, tools, minimum_experience, responsibilities, education, employment_type.
- role: short string title
- required_skills: array of short strings (technology or skill names)
- tools: array of short strings (tools or technologies)
- minimum_experience: short string like '2 years' or 'Not specified'
- responsibilities: array of short bullet strings (2-8 items ideally)
- education: short string if present otherwise empty string
- employment_type: Full-time / Part-time / Internship / Contract / Not specified

Return valid JSON only.

Job Description:
%s`, description)
}

// BuildResumeScreeningPrompt creates the prompt comparing a resume against
// the analyzed job requirements.
func (pb *PromptBuilder) BuildResumeScreeningPrompt(jdJSON, resumeText string) string {
	return fmt.Sprintf(`You are an expert HR analyst. Compare the candidate's resume against the job description.

JOB DESCRIPTION ANALYSIS:
%s

CANDIDATE RESUME:
%s

Your task:
1. List which required skills from the JD are present in the resume (matched_skills).
2. List which required skills are missing (missing_skills).
3. Compute a skill match percentage (0-100) = (#matched / #required) x 100.
4. Write a 1-2 sentence summary.

Return ONLY valid JSON:
{
  "skill_match": <integer>,
  "matched_skills": ["skill1", "skill2"],
  "missing_skills": ["skill3", "skill4"],
  "comment": "Brief summary here."
}`, jdJSON, resumeText)
}

// BuildAnswerScorePrompt creates the prompt scoring a single interview
// answer against the job requirements.
func (pb *PromptBuilder) BuildAnswerScorePrompt(jdJSON, question, answer string, rubrics []string) string {
	rubricText := "N/A"
	if len(rubrics) > 0 {
		rubricText = strings.Join(rubrics, "\n")
	}

	return fmt.Sprintf(`You are an experienced technical interviewer. Evaluate the candidate's answer to one interview question based on the job requirements.

JOB REQUIREMENTS:
%s

ADDITIONAL RUBRICS:
%s

QUESTION:
%s

ANSWER:
%s

Evaluation criteria:
- Relevance to job requirements (40%%)
- Technical depth and accuracy (30%%)
- Communication clarity (15%%)
- Examples and specificity (15%%)

Return ONLY valid JSON with this structure:
{
  "score": <integer 0-100>,
  "feedback": "brief feedback",
  "strengths": ["strength demonstrated in this answer"],
  "concerns": ["concern or gap in this answer"]
}
Keep strengths and concerns short; omit them (empty arrays) when nothing stands out.`, jdJSON, rubricText, question, answer)
}

// BuildSummaryPrompt creates the prompt for the final narrative summary.
func (pb *PromptBuilder) BuildSummaryPrompt(jdJSON, resumeJSON, interviewJSON string, overallScore int, recommendation string) string {
	return fmt.Sprintf(`You are an expert technical hiring manager writing a final assessment of a candidate.

JOB REQUIREMENTS:
%s

RESUME EVALUATION:
%s

INTERVIEW EVALUATION:
%s

COMPUTED OVERALL SCORE: %d (recommendation: %s)

Write a concise overall summary (3-5 sentences) covering the candidate's fit for the role, their main strengths, and the key gaps. Return ONLY the summary text, no JSON and no headings.`, jdJSON, resumeJSON, interviewJSON, overallScore, recommendation)
}

// BuildInterviewQuestionsPrompt creates the prompt for generating interview
// questions from a job title and description.
func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(jobTitle, description string, numQuestions int) string {
	if jobTitle == "" {
		jobTitle = "N/A"
	}
	if description == "" {
		description = "N/A"
	}

	return fmt.Sprintf(`You are an expert interviewer. Given the job title: %s and job description:
%s

Generate %d clear, focused interview questions that assess both technical skills and problem-solving ability. Return each question on its own line with no numbering.`, jobTitle, description, numQuestions)
}
