package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

// QuizService handles quiz retrieval and grading
type QuizService struct {
	quizRepo   *repositories.QuizRepository
	moduleRepo *repositories.ModuleRepository
}

// NewQuizService creates a new quiz service instance
func NewQuizService(quizRepo *repositories.QuizRepository, moduleRepo *repositories.ModuleRepository) *QuizService {
	return &QuizService{
		quizRepo:   quizRepo,
		moduleRepo: moduleRepo,
	}
}

// GetQuizForModule retrieves the quiz attached to a module. Inactive modules
// hide their quizzes from non-admin callers.
func (s *QuizService) GetQuizForModule(ctx context.Context, moduleID uuid.UUID, role models.RoleType) (*models.Quiz, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if !module.IsActive && role != models.RoleAdmin {
		return nil, apperrors.ErrModuleNotFound
	}

	return s.quizRepo.GetByModuleID(ctx, moduleID)
}

// SubmitQuiz grades a submission against the module's quiz. Unanswered
// questions count as wrong; answers for unknown questions are ignored.
// Grading never mutates progress rows.
func (s *QuizService) SubmitQuiz(ctx context.Context, moduleID uuid.UUID, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error) {
	quiz, err := s.quizRepo.GetByModuleID(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	selected := make(map[uuid.UUID]int, len(req.Answers))
	for _, answer := range req.Answers {
		selected[answer.QuestionID] = answer.SelectedOption
	}

	result := &dto.QuizResultResponse{
		QuizID:       quiz.ID,
		PassingScore: quiz.PassingScore,
	}

	for _, question := range quiz.Questions {
		result.TotalPoints += question.Points

		chosen, answered := selected[question.ID]
		if !answered {
			chosen = -1
		}

		correct := answered && chosen == question.CorrectOption
		earned := 0
		if correct {
			earned = question.Points
			result.Score += earned
		}

		result.Questions = append(result.Questions, dto.QuizQuestionResult{
			QuestionID:     question.ID,
			SelectedOption: chosen,
			CorrectOption:  question.CorrectOption,
			Correct:        correct,
			PointsEarned:   earned,
			Explanation:    question.Explanation,
		})
	}

	if result.TotalPoints > 0 {
		result.Percentage = float64(result.Score) / float64(result.TotalPoints) * 100
	}
	result.Passed = result.Percentage >= float64(quiz.PassingScore)

	return result, nil
}
