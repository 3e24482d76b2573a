package models

type Category string

const (
	CategoryCoding Category = "coding"
	CategoryExam   Category = "exam"
)

// Terminology maps generic nouns to the wording a domain uses on screen
type Terminology struct {
	Chapter string `json:"chapter"`
	Topic   string `json:"topic"`
	Subject string `json:"subject"`
	Test    string `json:"test"`
}

type ContentTypes struct {
	Videos    bool `json:"videos"`
	Notes     bool `json:"notes"`
	Practice  bool `json:"practice"`
	Problems  bool `json:"problems"`
	Contests  bool `json:"contests"`
	MockTests bool `json:"mock_tests"`
}

type Chapter struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

type Subject struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

// DomainConfig is derived purely from a domain identifier
type DomainConfig struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     Category     `json:"category"`
	Description  string       `json:"description"`
	Terminology  Terminology  `json:"terminology"`
	ContentTypes ContentTypes `json:"content_types"`
	Subjects     []Subject    `json:"subjects"`
}

func (c DomainConfig) IsCoding() bool {
	return c.Category == CategoryCoding
}
