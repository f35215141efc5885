package domain

// TestCase is one input/expected-output pair of an assignment.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	Description    string `json:"description,omitempty"`
}

// Assignment is a coding exercise attached to a module. Not yet exposed
// through any route; kept in the domain model alongside its migration so the
// schema stays ahead of the API.
type Assignment struct {
	BaseModel
	ModuleID    string     `gorm:"size:36;index;not null" json:"moduleId"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"size:5000;not null" json:"description"`
	Difficulty  Difficulty `gorm:"size:20;not null" json:"difficulty"`
	StarterCode *string    `gorm:"size:10000" json:"starterCode,omitempty"`
	TestCases   []TestCase `gorm:"serializer:json" json:"testCases"`
	Hints       []string   `gorm:"serializer:json" json:"hints,omitempty"`
	MaxScore    int        `gorm:"not null;default:100" json:"maxScore"`
	TimeLimit   *int       `json:"timeLimit,omitempty"`
}

// NewAssignment builds an unpersisted assignment with the default max score.
func NewAssignment(moduleID, title, description string, difficulty Difficulty, testCases []TestCase) *Assignment {
	a := &Assignment{
		ModuleID:    moduleID,
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
		TestCases:   testCases,
		MaxScore:    100,
	}
	a.Touch()
	a.CreatedAt = a.UpdatedAt
	return a
}

// AssignmentPatch carries optional field updates.
type AssignmentPatch struct {
	Title       *string
	Description *string
	Difficulty  *Difficulty
	StarterCode *string
	TestCases   []TestCase
	Hints       []string
	MaxScore    *int
	TimeLimit   *int
}

// Update applies the patch and refreshes the modified timestamp.
func (a *Assignment) Update(p AssignmentPatch) {
	if p.Title != nil && *p.Title != "" {
		a.Title = *p.Title
	}
	if p.Description != nil && *p.Description != "" {
		a.Description = *p.Description
	}
	if p.Difficulty != nil && *p.Difficulty != "" {
		a.Difficulty = *p.Difficulty
	}
	if p.StarterCode != nil {
		a.StarterCode = p.StarterCode
	}
	if p.TestCases != nil {
		a.TestCases = p.TestCases
	}
	if p.Hints != nil {
		a.Hints = p.Hints
	}
	if p.MaxScore != nil {
		a.MaxScore = *p.MaxScore
	}
	if p.TimeLimit != nil {
		a.TimeLimit = p.TimeLimit
	}
	a.Touch()
}

// AddTestCase appends a test case.
func (a *Assignment) AddTestCase(tc TestCase) {
	a.TestCases = append(a.TestCases, tc)
	a.Touch()
}

// AddHint appends a hint.
func (a *Assignment) AddHint(hint string) {
	a.Hints = append(a.Hints, hint)
	a.Touch()
}

// HasTimeLimit reports whether the assignment is timed.
func (a *Assignment) HasTimeLimit() bool {
	return a.TimeLimit != nil && *a.TimeLimit > 0
}
