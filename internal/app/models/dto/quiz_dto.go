package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/ethos-training/ethos/internal/app/models"
)

// QuizResponse is a quiz as presented to a trainee: correct answers and
// explanations are stripped.
type QuizResponse struct {
	ID           uuid.UUID              `json:"id"`
	ModuleID     uuid.UUID              `json:"moduleId"`
	Title        string                 `json:"title"`
	PassingScore int                    `json:"passingScore"`
	Questions    []QuizQuestionResponse `json:"questions"`
}

// QuizQuestionResponse is a question without grading information.
type QuizQuestionResponse struct {
	ID           uuid.UUID       `json:"id"`
	Prompt       string          `json:"prompt"`
	Options      json.RawMessage `json:"options" swaggertype:"array,string"`
	Points       int             `json:"points"`
	DisplayOrder int             `json:"displayOrder"`
}

// SubmitQuizRequest carries a trainee's selected option per question.
type SubmitQuizRequest struct {
	Answers []QuizAnswer `json:"answers" binding:"required,dive"`
}

// QuizAnswer is a single selected option.
type QuizAnswer struct {
	QuestionID     uuid.UUID `json:"questionId" binding:"required"`
	SelectedOption int       `json:"selectedOption" binding:"min=0"`
}

// QuizResultResponse is the graded outcome of a submission.
type QuizResultResponse struct {
	QuizID       uuid.UUID            `json:"quizId"`
	Score        int                  `json:"score"`        // points earned
	TotalPoints  int                  `json:"totalPoints"`  // points available
	Percentage   float64              `json:"percentage"`   // score as percent of total
	Passed       bool                 `json:"passed"`       // percentage >= passing score
	PassingScore int                  `json:"passingScore"` // percent required to pass
	Questions    []QuizQuestionResult `json:"questions"`
}

// QuizQuestionResult is per-question grading feedback.
type QuizQuestionResult struct {
	QuestionID     uuid.UUID `json:"questionId"`
	SelectedOption int       `json:"selectedOption"`
	CorrectOption  int       `json:"correctOption"`
	Correct        bool      `json:"correct"`
	PointsEarned   int       `json:"pointsEarned"`
	Explanation    string    `json:"explanation,omitempty"`
}

// FromQuiz converts a quiz model into its trainee-facing projection.
func FromQuiz(quiz *models.Quiz) QuizResponse {
	if quiz == nil {
		return QuizResponse{}
	}

	questions := make([]QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, QuizQuestionResponse{
			ID:           q.ID,
			Prompt:       q.Prompt,
			Options:      q.Options,
			Points:       q.Points,
			DisplayOrder: q.DisplayOrder,
		})
	}

	return QuizResponse{
		ID:           quiz.ID,
		ModuleID:     quiz.ModuleID,
		Title:        quiz.Title,
		PassingScore: quiz.PassingScore,
		Questions:    questions,
	}
}
