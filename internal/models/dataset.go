package models

type Stat struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Change string `json:"change" yaml:"change"`
}

type DailyChallenge struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Points     int    `json:"points" yaml:"points"`
	Completed  bool   `json:"completed" yaml:"completed"`
}

type UpcomingEvent struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Date  string `json:"date" yaml:"date"`
	Type  string `json:"type" yaml:"type"`
}

type ProgressTopic struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Progress int    `json:"progress" yaml:"progress"`
}

type LearnModule struct {
	ID               string `json:"id" yaml:"id"`
	Title            string `json:"title" yaml:"title"`
	Lessons          int    `json:"lessons" yaml:"lessons"`
	CompletedLessons int    `json:"completed_lessons" yaml:"completed_lessons"`
	Duration         string `json:"duration" yaml:"duration"`
}

type Problem struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Difficulty string   `json:"difficulty" yaml:"difficulty"`
	Tags       []string `json:"tags" yaml:"tags"`
	Acceptance float64  `json:"acceptance" yaml:"acceptance"`
	Solved     bool     `json:"solved" yaml:"solved"`
}

type Contest struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	StartsAt     string `json:"starts_at" yaml:"starts_at"`
	Duration     string `json:"duration" yaml:"duration"`
	Participants int    `json:"participants" yaml:"participants"`
	Registered   bool   `json:"registered" yaml:"registered"`
}

type Test struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Questions int    `json:"questions" yaml:"questions"`
	Duration  string `json:"duration" yaml:"duration"`
	Attempted bool   `json:"attempted" yaml:"attempted"`
	Score     int    `json:"score" yaml:"score"`
}

type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Unlocked    bool   `json:"unlocked" yaml:"unlocked"`
	Progress    int    `json:"progress" yaml:"progress"`
}

// Reward is an item in the coin store
type Reward struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
}

// DomainData is the static snapshot shown for one domain. Arrays never
// reference each other.
type DomainData struct {
	Coins          int             `json:"coins" yaml:"coins"`
	Streak         int             `json:"streak" yaml:"streak"`
	Stats          []Stat          `json:"stats" yaml:"stats"`
	DailyChallenge DailyChallenge  `json:"daily_challenge" yaml:"daily_challenge"`
	UpcomingEvents []UpcomingEvent `json:"upcoming_events" yaml:"upcoming_events"`
	ProgressTopics []ProgressTopic `json:"progress_topics" yaml:"progress_topics"`
	LearnModules   []LearnModule   `json:"learn_modules" yaml:"learn_modules"`
	Problems       []Problem       `json:"problems" yaml:"problems"`
	Contests       []Contest       `json:"contests" yaml:"contests"`
	Tests          []Test          `json:"tests" yaml:"tests"`
	Achievements   []Achievement   `json:"achievements" yaml:"achievements"`
	Rewards        []Reward        `json:"rewards" yaml:"rewards"`
}

// FindReward looks a reward up by ID
func (d DomainData) FindReward(id string) (Reward, bool) {
	for _, r := range d.Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
