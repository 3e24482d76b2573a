package domains

import (
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

// DefaultDomainName is the display name used for identifiers the registry
// does not know.
const DefaultDomainName = "General Learning"

var (
	codingTerminology = models.Terminology{
		Chapter: "Module",
		Topic:   "Concept",
		Subject: "Track",
		Test:    "Assessment",
	}
	examTerminology = models.Terminology{
		Chapter: "Chapter",
		Topic:   "Topic",
		Subject: "Subject",
		Test:    "Mock Test",
	}
	genericTerminology = models.Terminology{
		Chapter: "Chapter",
		Topic:   "Topic",
		Subject: "Subject",
		Test:    "Test",
	}

	codingContent = models.ContentTypes{
		Videos: true, Notes: true, Practice: true, Problems: true, Contests: true, MockTests: false,
	}
	examContent = models.ContentTypes{
		Videos: true, Notes: true, Practice: true, Problems: false, Contests: false, MockTests: true,
	}
	allContent = models.ContentTypes{
		Videos: true, Notes: true, Practice: true, Problems: true, Contests: true, MockTests: true,
	}
)

// Registry resolves domain identifiers to their static configuration.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	order   []string
	configs map[string]models.DomainConfig
}

// NewRegistry builds the registry of known domains
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]models.DomainConfig)}
	for _, cfg := range knownDomains() {
		r.order = append(r.order, cfg.ID)
		r.configs[cfg.ID] = cfg
	}
	return r
}

// Lookup returns the configuration for id. It never fails: identifiers
// without an entry get the default configuration carrying the requested id.
func (r *Registry) Lookup(id string) models.DomainConfig {
	if cfg, ok := r.configs[id]; ok {
		return cloneConfig(cfg)
	}
	cfg := defaultDomain()
	cfg.ID = id
	return cfg
}

// Known reports whether id has an explicit entry
func (r *Registry) Known(id string) bool {
	_, ok := r.configs[id]
	return ok
}

// List returns every known domain in selection-screen order
func (r *Registry) List() []models.DomainConfig {
	out := make([]models.DomainConfig, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneConfig(r.configs[id]))
	}
	return out
}

func (r *Registry) Terminology(id string) models.Terminology {
	return r.Lookup(id).Terminology
}

func cloneConfig(cfg models.DomainConfig) models.DomainConfig {
	subjects := make([]models.Subject, len(cfg.Subjects))
	for i, s := range cfg.Subjects {
		chapters := make([]models.Chapter, len(s.Chapters))
		for j, ch := range s.Chapters {
			chapters[j] = models.Chapter{
				ID:     ch.ID,
				Name:   ch.Name,
				Topics: append([]string(nil), ch.Topics...),
			}
		}
		subjects[i] = models.Subject{ID: s.ID, Name: s.Name, Chapters: chapters}
	}
	cfg.Subjects = subjects
	return cfg
}

func chapter(id, name string, topics ...string) models.Chapter {
	return models.Chapter{ID: id, Name: name, Topics: topics}
}

func subject(id, name string, chapters ...models.Chapter) models.Subject {
	return models.Subject{ID: id, Name: name, Chapters: chapters}
}

func defaultDomain() models.DomainConfig {
	return models.DomainConfig{
		Name:         DefaultDomainName,
		Category:     models.CategoryCoding,
		Description:  "Foundational material for self-directed learners",
		Terminology:  genericTerminology,
		ContentTypes: allContent,
		Subjects: []models.Subject{
			subject("fundamentals", "Fundamentals",
				chapter("getting-started", "Getting Started", "Study Habits", "Goal Setting"),
				chapter("problem-solving", "Problem Solving", "Breaking Down Problems", "Checking Your Work"),
			),
		},
	}
}

func knownDomains() []models.DomainConfig {
	return []models.DomainConfig{
		{
			ID:           "competitive-programming",
			Name:         "Competitive Programming",
			Category:     models.CategoryCoding,
			Description:  "Algorithms and data structures for contests like Codeforces and ICPC",
			Terminology:  codingTerminology,
			ContentTypes: codingContent,
			Subjects: []models.Subject{
				subject("algorithms", "Algorithms",
					chapter("sorting", "Sorting & Searching", "Binary Search", "Two Pointers", "Merge Sort"),
					chapter("dp", "Dynamic Programming", "Knapsack", "LIS", "Bitmask DP"),
					chapter("graphs", "Graph Algorithms", "BFS & DFS", "Dijkstra", "Topological Sort"),
				),
				subject("data-structures", "Data Structures",
					chapter("trees", "Trees", "Segment Tree", "Fenwick Tree", "LCA"),
					chapter("hashing", "Hashing", "Rolling Hash", "Hash Maps"),
				),
				subject("math", "Mathematics",
					chapter("number-theory", "Number Theory", "Sieve", "Modular Arithmetic", "GCD"),
					chapter("combinatorics", "Combinatorics", "nCr", "Inclusion-Exclusion"),
				),
			},
		},
		{
			ID:           "frontend",
			Name:         "Frontend Development",
			Category:     models.CategoryCoding,
			Description:  "Building user interfaces for the web",
			Terminology:  codingTerminology,
			ContentTypes: codingContent,
			Subjects: []models.Subject{
				subject("html-css", "HTML & CSS",
					chapter("layout", "Layout", "Flexbox", "Grid", "Responsive Design"),
					chapter("semantics", "Semantic HTML", "Accessibility", "Forms"),
				),
				subject("javascript", "JavaScript",
					chapter("core", "Language Core", "Closures", "Promises", "Modules"),
					chapter("dom", "The DOM", "Events", "Rendering"),
				),
				subject("frameworks", "Frameworks",
					chapter("react", "React", "Components", "Hooks", "State Management"),
				),
			},
		},
		{
			ID:           "backend",
			Name:         "Backend Development",
			Category:     models.CategoryCoding,
			Description:  "Services, APIs and data storage",
			Terminology:  codingTerminology,
			ContentTypes: codingContent,
			Subjects: []models.Subject{
				subject("apis", "APIs",
					chapter("http", "HTTP Services", "REST Design", "Status Codes", "Middleware"),
					chapter("auth", "Authentication", "Sessions", "Tokens"),
				),
				subject("databases", "Databases",
					chapter("sql", "SQL", "Joins", "Indexes", "Transactions"),
					chapter("caching", "Caching", "Cache-aside", "Expiry"),
				),
			},
		},
		{
			ID:           "mobile-dev",
			Name:         "Mobile Development",
			Category:     models.CategoryCoding,
			Description:  "Native and cross-platform mobile apps",
			Terminology:  codingTerminology,
			ContentTypes: codingContent,
			Subjects: []models.Subject{
				subject("android", "Android",
					chapter("kotlin", "Kotlin Basics", "Null Safety", "Coroutines"),
					chapter("ui", "Android UI", "Layouts", "Navigation"),
				),
				subject("cross-platform", "Cross-platform",
					chapter("flutter", "Flutter", "Widgets", "State", "Platform Channels"),
				),
			},
		},
		{
			ID:           "jee",
			Name:         "JEE Preparation",
			Category:     models.CategoryExam,
			Description:  "Joint Entrance Examination for engineering admissions in India",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("physics", "Physics",
					chapter("mechanics", "Mechanics", "Kinematics", "Laws of Motion", "Rotational Motion"),
					chapter("electrostatics", "Electrostatics", "Coulomb's Law", "Electric Field", "Capacitance"),
				),
				subject("chemistry", "Chemistry",
					chapter("physical", "Physical Chemistry", "Mole Concept", "Thermodynamics", "Equilibrium"),
					chapter("organic", "Organic Chemistry", "GOC", "Hydrocarbons"),
				),
				subject("mathematics", "Mathematics",
					chapter("calculus", "Calculus", "Limits", "Derivatives", "Integration"),
					chapter("algebra", "Algebra", "Quadratic Equations", "Sequences & Series", "Complex Numbers"),
				),
			},
		},
		{
			ID:           "neet",
			Name:         "NEET Preparation",
			Category:     models.CategoryExam,
			Description:  "National Eligibility cum Entrance Test for medical admissions",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("biology", "Biology",
					chapter("cell", "Cell Biology", "Cell Structure", "Cell Division"),
					chapter("genetics", "Genetics", "Mendelian Inheritance", "Molecular Basis"),
					chapter("physiology", "Human Physiology", "Digestion", "Circulation", "Neural Control"),
				),
				subject("physics", "Physics",
					chapter("optics", "Optics", "Reflection", "Refraction"),
				),
				subject("chemistry", "Chemistry",
					chapter("bonding", "Chemical Bonding", "VSEPR", "Hybridisation"),
				),
			},
		},
		{
			ID:           "gaokao",
			Name:         "Gaokao Preparation",
			Category:     models.CategoryExam,
			Description:  "National College Entrance Examination of China",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("chinese", "Chinese",
					chapter("reading", "Reading Comprehension", "Classical Texts", "Modern Prose"),
					chapter("composition", "Composition", "Argumentative Essays"),
				),
				subject("mathematics", "Mathematics",
					chapter("functions", "Functions", "Exponential Functions", "Trigonometry"),
				),
				subject("english", "English",
					chapter("grammar", "Grammar", "Tenses", "Clauses"),
				),
			},
		},
		{
			ID:           "upsc",
			Name:         "UPSC Civil Services",
			Category:     models.CategoryExam,
			Description:  "Union Public Service Commission civil services examination",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("polity", "Indian Polity",
					chapter("constitution", "Constitution", "Fundamental Rights", "DPSP", "Amendments"),
					chapter("governance", "Governance", "Parliament", "Judiciary"),
				),
				subject("history", "History",
					chapter("modern", "Modern India", "Freedom Struggle", "Reform Movements"),
				),
				subject("geography", "Geography",
					chapter("physical", "Physical Geography", "Monsoon", "Landforms"),
				),
			},
		},
		{
			ID:           "mpsc",
			Name:         "MPSC State Services",
			Category:     models.CategoryExam,
			Description:  "Maharashtra Public Service Commission examinations",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("maharashtra", "Maharashtra Studies",
					chapter("history", "History of Maharashtra", "Maratha Empire", "Social Reformers"),
					chapter("geography", "Geography of Maharashtra", "Rivers", "Agriculture"),
				),
				subject("aptitude", "CSAT",
					chapter("reasoning", "Reasoning", "Syllogisms", "Series"),
				),
			},
		},
		{
			ID:           "gate",
			Name:         "GATE Preparation",
			Category:     models.CategoryExam,
			Description:  "Graduate Aptitude Test in Engineering",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("cs-core", "Computer Science",
					chapter("os", "Operating Systems", "Scheduling", "Paging", "Deadlocks"),
					chapter("toc", "Theory of Computation", "Regular Languages", "Turing Machines"),
				),
				subject("engineering-math", "Engineering Mathematics",
					chapter("linear-algebra", "Linear Algebra", "Eigenvalues", "Matrix Rank"),
				),
			},
		},
		{
			ID:           "cat",
			Name:         "CAT Preparation",
			Category:     models.CategoryExam,
			Description:  "Common Admission Test for management programmes",
			Terminology:  examTerminology,
			ContentTypes: examContent,
			Subjects: []models.Subject{
				subject("quant", "Quantitative Aptitude",
					chapter("arithmetic", "Arithmetic", "Percentages", "Time & Work", "Ratios"),
				),
				subject("varc", "Verbal Ability",
					chapter("rc", "Reading Comprehension", "Inference", "Main Idea"),
				),
				subject("dilr", "DI & LR",
					chapter("di", "Data Interpretation", "Tables", "Charts"),
				),
			},
		},
	}
}
