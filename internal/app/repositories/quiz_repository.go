package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/db"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

// QuizRepository handles database operations for quizzes
type QuizRepository struct {
	db db.Pool
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db db.Pool) *QuizRepository {
	return &QuizRepository{
		db: db,
	}
}

// GetByModuleID retrieves the quiz for a module with its questions in
// display order.
func (r *QuizRepository) GetByModuleID(ctx context.Context, moduleID uuid.UUID) (*models.Quiz, error) {
	query := `
		SELECT id, module_id, title, passing_score, created_at
		FROM quizzes
		WHERE module_id = $1
	`

	var quiz models.Quiz
	err := r.db.QueryRow(ctx, query, moduleID).Scan(
		&quiz.ID,
		&quiz.ModuleID,
		&quiz.Title,
		&quiz.PassingScore,
		&quiz.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("error retrieving quiz: %w", err)
	}

	questions, err := r.getQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions

	return &quiz, nil
}

// getQuestions loads all questions for a quiz.
func (r *QuizRepository) getQuestions(ctx context.Context, quizID uuid.UUID) ([]models.QuizQuestion, error) {
	query := `
		SELECT id, quiz_id, prompt, options, correct_option, explanation, points, display_order
		FROM quiz_questions
		WHERE quiz_id = $1
		ORDER BY display_order
	`

	rows, err := r.db.Query(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving quiz questions: %w", err)
	}
	defer rows.Close()

	var questions []models.QuizQuestion
	for rows.Next() {
		var q models.QuizQuestion
		err := rows.Scan(
			&q.ID, &q.QuizID, &q.Prompt, &q.Options,
			&q.CorrectOption, &q.Explanation, &q.Points, &q.DisplayOrder,
		)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}
