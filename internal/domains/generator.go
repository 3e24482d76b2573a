package domains

import (
	"fmt"
	"strings"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

const maxTrendingItems = 6

var (
	codingInstructors = []string{"Priya Sharma", "Alex Chen", "Marcus Johnson", "Sofia Rodriguez", "Kenji Tanaka"}
	examInstructors   = []string{"Dr. Rajesh Kumar", "Prof. Anita Desai", "Dr. Li Wei", "Prof. Suresh Iyer", "Dr. Meera Nair"}
	contentLevels     = []string{"Beginner", "Intermediate", "Advanced"}
)

// GenerateLearnContent synthesizes the learn-section listing for a domain
// from its subject taxonomy. The output depends only on cfg, so the same
// domain always yields the same listing.
func GenerateLearnContent(cfg models.DomainConfig) []models.LearnSection {
	g := &generator{cfg: cfg, instructors: instructorsFor(cfg.Category)}

	sections := []models.LearnSection{g.overview(), g.trending()}
	for _, s := range cfg.Subjects {
		sections = append(sections, g.chapters(s))
	}
	for _, s := range cfg.Subjects {
		sections = append(sections, g.topics(s))
	}
	if cfg.ContentTypes.Practice {
		sections = append(sections, g.practice())
	}
	return sections
}

func instructorsFor(c models.Category) []string {
	if c == models.CategoryExam {
		return examInstructors
	}
	return codingInstructors
}

// generator keeps a running index across sections so every card in a
// listing gets distinct templated values.
type generator struct {
	cfg         models.DomainConfig
	instructors []string
	index       int
}

func (g *generator) item(id, title, subject string, kind models.ContentKind) models.ContentItem {
	i := g.index
	g.index++
	return models.ContentItem{
		ID:         id,
		Title:      title,
		Kind:       kind,
		Subject:    subject,
		Duration:   FormatDuration(i),
		Views:      FormatViews((i+1)*1370 + 420),
		Instructor: g.instructors[i%len(g.instructors)],
		Level:      contentLevels[i%len(contentLevels)],
	}
}

func (g *generator) overview() models.LearnSection {
	sec := models.LearnSection{
		ID:    string(models.LearnOverview),
		Kind:  models.LearnOverview,
		Title: fmt.Sprintf("%s Overview", g.cfg.Name),
	}
	for _, s := range g.cfg.Subjects {
		sec.Items = append(sec.Items, g.item(
			fmt.Sprintf("overview-%s", s.ID),
			fmt.Sprintf("Introduction to %s", s.Name),
			s.Name,
			models.ContentVideo,
		))
	}
	return sec
}

func (g *generator) trending() models.LearnSection {
	sec := models.LearnSection{
		ID:    string(models.LearnTrending),
		Kind:  models.LearnTrending,
		Title: fmt.Sprintf("Trending %ss", g.cfg.Terminology.Topic),
	}
	for _, s := range g.cfg.Subjects {
		for _, ch := range s.Chapters {
			if len(sec.Items) == maxTrendingItems {
				return sec
			}
			if len(ch.Topics) == 0 {
				continue
			}
			topic := ch.Topics[0]
			sec.Items = append(sec.Items, g.item(
				fmt.Sprintf("trending-%s-%s", ch.ID, slug(topic)),
				fmt.Sprintf("%s Explained", topic),
				s.Name,
				models.ContentVideo,
			))
		}
	}
	return sec
}

func (g *generator) chapters(s models.Subject) models.LearnSection {
	sec := models.LearnSection{
		ID:    fmt.Sprintf("%s-chapters", s.ID),
		Kind:  models.LearnChapters,
		Title: fmt.Sprintf("%s %ss", s.Name, g.cfg.Terminology.Chapter),
	}
	for n, ch := range s.Chapters {
		sec.Items = append(sec.Items, g.item(
			fmt.Sprintf("%s-%s", s.ID, ch.ID),
			fmt.Sprintf("%s %d: %s", g.cfg.Terminology.Chapter, n+1, ch.Name),
			s.Name,
			models.ContentModule,
		))
	}
	return sec
}

func (g *generator) topics(s models.Subject) models.LearnSection {
	sec := models.LearnSection{
		ID:    fmt.Sprintf("%s-topics", s.ID),
		Kind:  models.LearnTopics,
		Title: fmt.Sprintf("%s %s Explainers", s.Name, g.cfg.Terminology.Topic),
	}
	for _, ch := range s.Chapters {
		for _, topic := range ch.Topics {
			sec.Items = append(sec.Items, g.item(
				fmt.Sprintf("%s-%s-%s", s.ID, ch.ID, slug(topic)),
				topic,
				s.Name,
				models.ContentArticle,
			))
		}
	}
	return sec
}

func (g *generator) practice() models.LearnSection {
	sec := models.LearnSection{
		ID:    string(models.LearnPractice),
		Kind:  models.LearnPractice,
		Title: "Practice Sets",
	}
	for _, s := range g.cfg.Subjects {
		sec.Items = append(sec.Items, g.item(
			fmt.Sprintf("practice-%s", s.ID),
			fmt.Sprintf("%s Practice Set", s.Name),
			s.Name,
			models.ContentPractice,
		))
	}
	return sec
}

// FormatDuration renders the templated mm:ss duration for card index i
func FormatDuration(i int) string {
	return fmt.Sprintf("%d:%02d", 8+i%17, (i*7)%60)
}

// FormatViews renders a view count the way cards display it
func FormatViews(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
