package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/internal/app/models"
	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/repositories"
	"github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/pkg/apperrors"
)

var questionColumns = []string{
	"id", "quiz_id", "prompt", "options", "correct_option",
	"explanation", "points", "display_order",
}

func newQuizService(mock pgxmock.PgxPoolIface) *services.QuizService {
	return services.NewQuizService(
		repositories.NewQuizRepository(mock),
		repositories.NewModuleRepository(mock),
	)
}

func expectQuiz(mock pgxmock.PgxPoolIface, moduleID, quizID uuid.UUID, questions *pgxmock.Rows) {
	createdAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM quizzes").
		WithArgs(moduleID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "module_id", "title", "passing_score", "created_at"}).
			AddRow(quizID, moduleID, "Knowledge Check", 70, createdAt))
	mock.ExpectQuery("FROM quiz_questions").
		WithArgs(quizID).
		WillReturnRows(questions)
}

func TestQuizService_SubmitQuiz(t *testing.T) {
	moduleID := uuid.New()
	quizID := uuid.New()
	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()

	options := []byte(`["Accept it","Decline it","Report it"]`)
	threeQuestions := func() *pgxmock.Rows {
		return pgxmock.NewRows(questionColumns).
			AddRow(q1, quizID, "A contractor offers you tickets. What do you do?", options, 1, "Gifts from contractors must be declined.", 2, 1).
			AddRow(q2, quizID, "A gift exceeds the de minimis threshold.", options, 2, "", 2, 2).
			AddRow(q3, quizID, "You are offered outside employment.", options, 2, "", 1, 3)
	}

	t.Run("grades a partial submission", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		expectQuiz(mock, moduleID, quizID, threeQuestions())

		// q1 correct, q2 wrong, q3 unanswered: 2 of 5 points.
		result, err := newQuizService(mock).SubmitQuiz(context.Background(), moduleID, &dto.SubmitQuizRequest{
			Answers: []dto.QuizAnswer{
				{QuestionID: q1, SelectedOption: 1},
				{QuestionID: q2, SelectedOption: 0},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, 5, result.TotalPoints)
		assert.InDelta(t, 40.0, result.Percentage, 0.01)
		assert.False(t, result.Passed)

		require.Len(t, result.Questions, 3)
		assert.True(t, result.Questions[0].Correct)
		assert.Equal(t, 2, result.Questions[0].PointsEarned)
		assert.Equal(t, "Gifts from contractors must be declined.", result.Questions[0].Explanation)
		assert.False(t, result.Questions[1].Correct)
		assert.Equal(t, -1, result.Questions[2].SelectedOption)
		assert.False(t, result.Questions[2].Correct)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passing at the threshold", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		expectQuiz(mock, moduleID, quizID, pgxmock.NewRows(questionColumns).
			AddRow(q1, quizID, "First", options, 0, "", 7, 1).
			AddRow(q2, quizID, "Second", options, 1, "", 3, 2))

		// 7 of 10 points is exactly the 70% passing score.
		result, err := newQuizService(mock).SubmitQuiz(context.Background(), moduleID, &dto.SubmitQuizRequest{
			Answers: []dto.QuizAnswer{
				{QuestionID: q1, SelectedOption: 0},
				{QuestionID: q2, SelectedOption: 2},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, result.Score)
		assert.True(t, result.Passed)
	})

	t.Run("answers for unknown questions are ignored", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		expectQuiz(mock, moduleID, quizID, pgxmock.NewRows(questionColumns).
			AddRow(q1, quizID, "Only question", options, 1, "", 1, 1))

		result, err := newQuizService(mock).SubmitQuiz(context.Background(), moduleID, &dto.SubmitQuizRequest{
			Answers: []dto.QuizAnswer{
				{QuestionID: uuid.New(), SelectedOption: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		require.Len(t, result.Questions, 1)
	})

	t.Run("module without a quiz", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM quizzes").
			WithArgs(moduleID).
			WillReturnError(apperrors.ErrQuizNotFound)

		_, err = newQuizService(mock).SubmitQuiz(context.Background(), moduleID, &dto.SubmitQuizRequest{})
		assert.ErrorIs(t, err, apperrors.ErrQuizNotFound)
	})
}

func TestQuizService_GetQuizForModule(t *testing.T) {
	moduleID := uuid.New()
	quizID := uuid.New()

	t.Run("inactive module hides the quiz from employees", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM training_modules WHERE id").
			WithArgs(moduleID).
			WillReturnRows(moduleRow(moduleID, false))

		_, err = newQuizService(mock).GetQuizForModule(context.Background(), moduleID, models.RoleEmployee)
		assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
	})

	t.Run("admins still see it", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM training_modules WHERE id").
			WithArgs(moduleID).
			WillReturnRows(moduleRow(moduleID, false))
		expectQuiz(mock, moduleID, quizID, pgxmock.NewRows(questionColumns))

		quiz, err := newQuizService(mock).GetQuizForModule(context.Background(), moduleID, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, quizID, quiz.ID)
		assert.Empty(t, quiz.Questions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
