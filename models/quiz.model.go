package models

// CourseQuiz owns questions, questions own answers. Strict containment chain.
type CourseQuiz struct {
	BaseModel
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	Course    Course         `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Title     string         `json:"title" gorm:"size:255;not null;index"`
	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

type QuizQuestion struct {
	BaseModel
	QuizID     uint         `json:"quiz_id" gorm:"index;not null"`
	Quiz       CourseQuiz   `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Text       string       `json:"text" gorm:"type:text;not null"`
	OrderIndex int          `json:"order" gorm:"default:0"`
	Answers    []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

type QuizAnswer struct {
	BaseModel
	QuestionID uint         `json:"question_id" gorm:"index;not null"`
	Question   QuizQuestion `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	Text       string       `json:"text" gorm:"size:255;not null"`
	IsCorrect  bool         `json:"is_correct" gorm:"default:false"`
	OrderIndex int          `json:"order" gorm:"default:0"`
}
