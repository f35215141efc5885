package domain

// Quiz is a graded questionnaire attached to a module. Like Assignment it is
// not yet exposed through any route.
type Quiz struct {
	BaseModel
	ModuleID     string  `gorm:"size:36;index;not null" json:"moduleId"`
	Title        string  `gorm:"size:200;not null" json:"title"`
	Description  *string `gorm:"size:1000" json:"description,omitempty"`
	PassingScore int     `gorm:"not null;default:70" json:"passingScore"`
	TimeLimit    *int    `json:"timeLimit,omitempty"`
}

// NewQuiz builds an unpersisted quiz with the default passing score.
func NewQuiz(moduleID, title string, description *string) *Quiz {
	q := &Quiz{
		ModuleID:     moduleID,
		Title:        title,
		Description:  description,
		PassingScore: 70,
	}
	q.Touch()
	q.CreatedAt = q.UpdatedAt
	return q
}

// QuizPatch carries optional field updates.
type QuizPatch struct {
	Title        *string
	Description  *string
	PassingScore *int
	TimeLimit    *int
}

// Update applies the patch and refreshes the modified timestamp.
func (q *Quiz) Update(p QuizPatch) {
	if p.Title != nil && *p.Title != "" {
		q.Title = *p.Title
	}
	if p.Description != nil {
		q.Description = p.Description
	}
	if p.PassingScore != nil {
		q.PassingScore = *p.PassingScore
	}
	if p.TimeLimit != nil {
		q.TimeLimit = p.TimeLimit
	}
	q.Touch()
}

// IsPassing reports whether the given score meets the passing threshold.
func (q *Quiz) IsPassing(score int) bool {
	return score >= q.PassingScore
}

// HasTimeLimit reports whether the quiz is timed.
func (q *Quiz) HasTimeLimit() bool {
	return q.TimeLimit != nil && *q.TimeLimit > 0
}

// QuestionOption is one selectable answer of a question.
type QuestionOption struct {
	ID        string `json:"id"`
	Text      string `json:"optionText"`
	IsCorrect bool   `json:"isCorrect"`
	Order     int    `json:"order"`
}

// Question is one entry of a quiz. Options are stored denormalized as JSON.
type Question struct {
	BaseModel
	QuizID    string           `gorm:"size:36;index;not null" json:"quizId"`
	Text      string           `gorm:"size:2000;not null" json:"questionText"`
	Options   []QuestionOption `gorm:"serializer:json" json:"options"`
	Points    int              `gorm:"not null;default:1" json:"points"`
	SortOrder int              `gorm:"not null" json:"order"`
}

// CorrectOptions returns the options marked correct.
func (q *Question) CorrectOptions() []QuestionOption {
	var correct []QuestionOption
	for _, o := range q.Options {
		if o.IsCorrect {
			correct = append(correct, o)
		}
	}
	return correct
}
