package models

type LearnSectionKind string

const (
	LearnOverview LearnSectionKind = "overview"
	LearnTrending LearnSectionKind = "trending"
	LearnChapters LearnSectionKind = "chapters"
	LearnTopics   LearnSectionKind = "topics"
	LearnPractice LearnSectionKind = "practice"
)

type ContentKind string

const (
	ContentVideo    ContentKind = "video"
	ContentModule   ContentKind = "module"
	ContentArticle  ContentKind = "article"
	ContentPractice ContentKind = "practice"
)

// ContentItem is one synthesized card in the learn section
type ContentItem struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Kind       ContentKind `json:"kind"`
	Subject    string      `json:"subject"`
	Duration   string      `json:"duration"`
	Views      string      `json:"views"`
	Instructor string      `json:"instructor"`
	Level      string      `json:"level"`
}

type LearnSection struct {
	ID    string           `json:"id"`
	Kind  LearnSectionKind `json:"kind"`
	Title string           `json:"title"`
	Items []ContentItem    `json:"items"`
}
