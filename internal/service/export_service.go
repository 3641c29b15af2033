package service

import (
	"bytes"
	"context"
	"encoding/json"
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/pkg/logger"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportService assembles quiz export packages and, when storage is
// configured, archives a copy of each package.
type ExportService struct {
	Catalog  *CatalogService
	Attempts *repository.AttemptRepository
	Storage  *StorageService
}

func NewExportService(catalog *CatalogService, attempts *repository.AttemptRepository, storage *StorageService) *ExportService {
	return &ExportService{Catalog: catalog, Attempts: attempts, Storage: storage}
}

func (s *ExportService) statistics(quizID uint) model.ExportStatistics {
	attempts := s.Attempts.ForQuiz(quizID)
	stats := model.ExportStatistics{TotalAttempts: len(attempts)}
	if len(attempts) > 0 {
		var sum float64
		for _, a := range attempts {
			sum += a.Score
		}
		stats.AverageScore = sum / float64(len(attempts))
	}
	return stats
}

func (s *ExportService) export(quiz *model.Quiz) model.QuizExport {
	return model.QuizExport{
		QuizData: model.QuizExportData{
			Quiz:          *quiz,
			ExportDate:    time.Now(),
			ExportVersion: model.ExportFormatVersion,
		},
		Statistics: s.statistics(quiz.ID),
	}
}

// ExportQuiz builds the export package for a single quiz.
func (s *ExportService) ExportQuiz(ctx context.Context, quizID uint) (*model.QuizExport, error) {
	quiz, err := s.Catalog.Get(quizID)
	if err != nil {
		return nil, err
	}

	pkg := s.export(quiz)
	pkg.Metadata = &model.ExportMetadata{
		ExportedBy:         "QuizMaster",
		FormatVersion:      model.ExportFormatVersion,
		CompatibleVersions: []string{model.ExportFormatVersion},
	}

	s.archive(ctx, &pkg)
	return &pkg, nil
}

// ExportQuizzes bundles several quizzes; unknown IDs are skipped.
func (s *ExportService) ExportQuizzes(ctx context.Context, quizIDs []uint) *model.QuizExportBundle {
	bundle := &model.QuizExportBundle{Quizzes: []model.QuizExport{}}
	for _, id := range quizIDs {
		quiz := s.Catalog.Catalog.FindByID(id)
		if quiz == nil {
			continue
		}
		bundle.Quizzes = append(bundle.Quizzes, s.export(quiz))
	}
	bundle.ExportMetadata = model.ExportBundleMetadata{
		TotalQuizzes:  len(bundle.Quizzes),
		ExportDate:    time.Now(),
		ExportedBy:    "QuizMaster",
		FormatVersion: model.ExportFormatVersion,
		PackageType:   "multiple_quizzes",
	}

	s.archive(ctx, bundle)
	return bundle
}

// archive stores a copy of the package. Failures are logged, never surfaced:
// the export response does not depend on the archive.
func (s *ExportService) archive(ctx context.Context, pkg interface{}) {
	if !s.Storage.Enabled() {
		return
	}

	payload, err := json.Marshal(pkg)
	if err != nil {
		logger.Log.Error("export archive marshal failed", zap.Error(err))
		return
	}

	filename := "quiz-export-" + uuid.New().String() + ".json"
	if _, err := s.Storage.Provider.Upload(ctx, filename, bytes.NewReader(payload), int64(len(payload)), "application/json"); err != nil {
		logger.Log.Error("export archive upload failed", zap.String("file", filename), zap.Error(err))
	}
}
