package model

import "time"

const ExportFormatVersion = "1.0"

// QuizExportData is the quiz payload inside an export package.
type QuizExportData struct {
	Quiz
	ExportDate    time.Time `json:"export_date"`
	ExportVersion string    `json:"export_version"`
}

type ExportStatistics struct {
	TotalAttempts int     `json:"total_attempts"`
	AverageScore  float64 `json:"average_score"`
}

type ExportMetadata struct {
	ExportedBy         string   `json:"exported_by"`
	FormatVersion      string   `json:"format_version"`
	CompatibleVersions []string `json:"compatible_versions"`
}

// QuizExport is a single exported quiz with its attempt statistics. Metadata
// is present on standalone exports and omitted inside bundles.
type QuizExport struct {
	QuizData   QuizExportData   `json:"quiz_data"`
	Statistics ExportStatistics `json:"statistics"`
	Metadata   *ExportMetadata  `json:"metadata,omitempty"`
}

type ExportBundleMetadata struct {
	TotalQuizzes  int       `json:"total_quizzes"`
	ExportDate    time.Time `json:"export_date"`
	ExportedBy    string    `json:"exported_by"`
	FormatVersion string    `json:"format_version"`
	PackageType   string    `json:"package_type"`
}

type QuizExportBundle struct {
	Quizzes        []QuizExport         `json:"quizzes"`
	ExportMetadata ExportBundleMetadata `json:"export_metadata"`
}
