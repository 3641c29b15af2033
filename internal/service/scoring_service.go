package service

import (
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
	"time"
)

// ScoringService grades submissions against the catalog and records each
// graded attempt in the history.
type ScoringService struct {
	Catalog  *CatalogService
	Attempts *repository.AttemptRepository
}

func NewScoringService(catalog *CatalogService, attempts *repository.AttemptRepository) *ScoringService {
	return &ScoringService{Catalog: catalog, Attempts: attempts}
}

// Grade matches answers to questions positionally: the i-th submitted answer
// is checked against the i-th question, regardless of any question_id in the
// payload. Correctness is an exact, case-sensitive label match. Answers past
// the end of the question list are ignored.
func (s *ScoringService) Grade(quiz *model.Quiz, answers []model.SubmittedAnswer) (*model.ScoreResult, error) {
	total := len(quiz.Questions)
	if total == 0 {
		return nil, util.ErrEmptyQuiz
	}

	correct := 0
	details := []model.AnswerDetail{}
	for i, answer := range answers {
		if i >= total {
			break
		}
		question := quiz.Questions[i]
		isCorrect := answer.Answer == question.Correct
		if isCorrect {
			correct++
		}
		details = append(details, model.AnswerDetail{
			Question:      question.Text,
			YourAnswer:    answer.Answer,
			CorrectAnswer: question.Correct,
			IsCorrect:     isCorrect,
			Options:       question.Options,
		})
	}

	return &model.ScoreResult{
		Score:   100 * float64(correct) / float64(total),
		Correct: correct,
		Total:   total,
		Details: details,
	}, nil
}

// Submit grades a submission and appends the attempt to the history. The
// attempt duplicates the per-question breakdown so it stays interpretable on
// its own.
func (s *ScoringService) Submit(quizID uint, username string, answers []model.SubmittedAnswer, timeTaken int) (*model.ScoreResult, error) {
	quiz, err := s.Catalog.Get(quizID)
	if err != nil {
		return nil, err
	}

	result, err := s.Grade(quiz, answers)
	if err != nil {
		return nil, err
	}

	s.Attempts.Append(model.Attempt{
		Username:  username,
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		Score:     result.Score,
		Correct:   result.Correct,
		Total:     result.Total,
		TimeTaken: timeTaken,
		Details:   result.Details,
		Date:      time.Now(),
	})

	return result, nil
}
