package service

import (
	"quizmaster_backend/internal/model"
	"quizmaster_backend/internal/repository"
	"quizmaster_backend/internal/util"
	"strings"
	"time"
)

// CatalogService validates quiz definitions at the boundary and serves reads
// from the in-memory catalog. Definitions are validated exactly once; the
// rest of the system trusts catalog entries.
type CatalogService struct {
	Catalog *repository.CatalogRepository
}

func NewCatalogService(catalog *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

// QuizDefinition is the payload accepted by create and import.
type QuizDefinition struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Difficulty  string           `json:"difficulty"`
	TimeLimit   int              `json:"time_limit"`
	Questions   []model.Question `json:"questions"`
	Creator     string           `json:"creator"`
}

var validLabels = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// validate reports the first offending field or question index. Import skips
// the answer-label check, matching the original import path.
func validate(def *QuizDefinition, checkLabels bool) error {
	switch {
	case def.Title == "":
		return util.Validationf("Missing required field: title")
	case def.Description == "":
		return util.Validationf("Missing required field: description")
	case def.Category == "":
		return util.Validationf("Missing required field: category")
	case def.Difficulty == "":
		return util.Validationf("Missing required field: difficulty")
	case def.TimeLimit == 0:
		return util.Validationf("Missing required field: time_limit")
	case len(def.Questions) == 0:
		return util.Validationf("Quiz must have at least 1 question")
	}

	for i, q := range def.Questions {
		if q.Text == "" || len(q.Options) == 0 || (checkLabels && q.Correct == "") {
			return util.Validationf("Question %d is missing required fields", i+1)
		}
		if len(q.Options) < 2 {
			return util.Validationf("Question %d must have at least 2 options", i+1)
		}
		if checkLabels && !validLabels[q.Correct] {
			return util.Validationf("Question %d correct answer must be A, B, C, or D", i+1)
		}
	}
	return nil
}

func (s *CatalogService) build(def *QuizDefinition, defaultCreator string, imported bool) *model.Quiz {
	creator := def.Creator
	if creator == "" {
		creator = defaultCreator
	}
	questions := make([]model.Question, len(def.Questions))
	copy(questions, def.Questions)
	for i := range questions {
		if questions[i].Points == 0 {
			questions[i].Points = 1
		}
	}
	return &model.Quiz{
		Title:       def.Title,
		Description: def.Description,
		Category:    def.Category,
		Difficulty:  def.Difficulty,
		TimeLimit:   def.TimeLimit,
		Questions:   questions,
		Creator:     creator,
		CreatedAt:   time.Now(),
		Imported:    imported,
	}
}

// Create validates the definition and appends a new quiz to the catalog.
func (s *CatalogService) Create(def *QuizDefinition) (uint, error) {
	if err := validate(def, true); err != nil {
		return 0, err
	}
	quiz := s.build(def, "Anonymous", false)
	return s.Catalog.Insert(quiz), nil
}

// Import accepts an exported quiz package and creates a fresh quiz from it.
// Re-import always creates a new quiz; nothing is updated in place.
func (s *CatalogService) Import(def *QuizDefinition, createdBy string) (uint, error) {
	if err := validate(def, false); err != nil {
		return 0, err
	}
	if createdBy == "" {
		createdBy = "Imported"
	}
	quiz := s.build(def, createdBy, true)
	quiz.Creator = createdBy
	return s.Catalog.Insert(quiz), nil
}

func (s *CatalogService) Get(id uint) (*model.Quiz, error) {
	quiz := s.Catalog.FindByID(id)
	if quiz == nil {
		return nil, util.ErrQuizNotFound
	}
	return quiz, nil
}

// List returns quizzes in insertion order, optionally filtered by exact
// category and difficulty.
func (s *CatalogService) List(category, difficulty string) []*model.Quiz {
	all := s.Catalog.List()
	if category == "" && difficulty == "" {
		return all
	}
	out := []*model.Quiz{}
	for _, q := range all {
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ByCategory filters case-insensitively on category.
func (s *CatalogService) ByCategory(category string) []*model.Quiz {
	out := []*model.Quiz{}
	for _, q := range s.Catalog.List() {
		if strings.EqualFold(q.Category, category) {
			out = append(out, q)
		}
	}
	return out
}

// Search matches the term case-insensitively against title, description and
// category. An empty term matches everything.
func (s *CatalogService) Search(term string) []*model.Quiz {
	all := s.Catalog.List()
	if term == "" {
		return all
	}
	needle := strings.ToLower(term)
	out := []*model.Quiz{}
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Title), needle) ||
			strings.Contains(strings.ToLower(q.Description), needle) ||
			strings.Contains(strings.ToLower(q.Category), needle) {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the distinct categories in first-use order.
func (s *CatalogService) Categories() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, q := range s.Catalog.List() {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

// Recommendations returns up to limit quizzes in catalog order.
func (s *CatalogService) Recommendations(limit int) []*model.Quiz {
	all := s.Catalog.List()
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}
