package models

type AnalyzeJDRequest struct {
	JobTitle    string `json:"job_title"`
	Description string `json:"description" validate:"required"`
}

type AnalyzeJDResponse struct {
	JobRequirements
	WordCount int      `json:"word_count"`
	TopSkills []string `json:"top_skills"`
	Notes     string   `json:"notes"`
}

type GenerateInterviewRequest struct {
	JobTitle     string `json:"job_title"`
	Description  string `json:"description"`
	NumQuestions int    `json:"num_questions"`
}

type GenerateInterviewResponse struct {
	Questions []string `json:"questions"`
}

type ScoreAnswerRequest struct {
	QuestionID     string   `json:"question_id"`
	QuestionText   string   `json:"question_text"`
	AnswerText     string   `json:"answer_text" validate:"required"`
	JobDescription string   `json:"job_description"`
	Rubrics        []string `json:"rubrics"`
}

type ScoreAnswerResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

type ScreenResumeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description"`
}

// ScreenResumeResponse duplicates the score and comment under the field
// names the web UI historically used (match_score, summary).
type ScreenResumeResponse struct {
	SkillMatch    int      `json:"skill_match"`
	MatchScore    int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Comment       string   `json:"comment"`
	Summary       string   `json:"summary"`
}

type EvaluateCandidateRequest struct {
	JobDescription string   `json:"job_description" validate:"required"`
	ResumeText     string   `json:"resume_text" validate:"required"`
	InterviewQA    []QAPair `json:"interview_qa"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Gemini    bool   `json:"gemini"`
	APIKeySet bool   `json:"api_key_set"`
}
