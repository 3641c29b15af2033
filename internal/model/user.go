package model

// swagger:model User
type User struct {
	BaseModel
	Username     string `gorm:"size:100;unique;not null" json:"username"`
	Email        string `gorm:"size:100;unique;not null" json:"email"`
	Password     string `gorm:"size:100;not null" json:"-"`
	TotalScore   int    `gorm:"default:0" json:"total_score"`
	QuizzesTaken int    `gorm:"default:0" json:"quizzes_taken"`
}

func (User) TableName() string {
	return "users"
}
