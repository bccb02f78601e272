package models

// JobRequirements is the structured view of a job description produced by
// the JD analyzer. It is created once per pipeline run and never mutated by
// downstream stages.
type JobRequirements struct {
	Role              string   `json:"role"`
	RequiredSkills    []string `json:"required_skills"`
	Tools             []string `json:"tools"`
	MinimumExperience string   `json:"minimum_experience"`
	Responsibilities  []string `json:"responsibilities"`
	Education         string   `json:"education"`
	EmploymentType    string   `json:"employment_type"`
}

// Normalize replaces nil slices with empty ones so the record always
// marshals with arrays instead of nulls.
func (j *JobRequirements) Normalize() {
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	if j.Tools == nil {
		j.Tools = []string{}
	}
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
}

// ResumeEvaluation scores a resume against the job requirements.
type ResumeEvaluation struct {
	SkillMatch    int      `json:"skill_match"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Comment       string   `json:"comment"`
}

// QAPair is one interview question with the candidate's answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionScore is the evaluation of a single interview answer.
type QuestionScore struct {
	Question string `json:"question"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// InterviewEvaluation aggregates per-question scores. When no answers were
// supplied it carries a zero score and empty collections.
type InterviewEvaluation struct {
	OverallScore   int             `json:"overall_score"`
	QuestionScores []QuestionScore `json:"question_scores"`
	Strengths      []string        `json:"strengths"`
	Concerns       []string        `json:"concerns"`
}

// DefaultInterviewEvaluation is the well-formed zero value used when the
// candidate submitted no interview answers.
func DefaultInterviewEvaluation() InterviewEvaluation {
	return InterviewEvaluation{
		OverallScore:   0,
		QuestionScores: []QuestionScore{},
		Strengths:      []string{},
		Concerns:       []string{},
	}
}

// FinalEvaluation is the aggregated verdict across resume and interview.
type FinalEvaluation struct {
	OverallScore   int      `json:"overall_score"`
	ResumeScore    int      `json:"resume_score"`
	InterviewScore int      `json:"interview_score"`
	Recommendation string   `json:"recommendation"`
	Summary        string   `json:"summary"`
	KeyStrengths   []string `json:"key_strengths"`
	KeyConcerns    []string `json:"key_concerns"`
}

// PipelineResult is the single artifact returned to the caller for one
// evaluation run.
type PipelineResult struct {
	JDAnalysis      JobRequirements     `json:"jd_analysis"`
	ResumeEval      ResumeEvaluation    `json:"resume_eval"`
	InterviewEval   InterviewEvaluation `json:"interview_eval"`
	FinalEvaluation FinalEvaluation     `json:"final_evaluation"`
}
