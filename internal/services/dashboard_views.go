package services

import (
	"fmt"
	"slices"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

// viewInput is what every section view is built from
type viewInput struct {
	user        models.UserData
	config      models.DomainConfig
	data        models.DomainData
	terminology models.Terminology
	state       models.DashboardState
}

type viewBuilder func(in viewInput) *SectionView

var viewBuilders = map[models.Section]viewBuilder{
	models.SectionDashboard: buildOverview,
	models.SectionLearn:     buildLearn,
	models.SectionProblems:  buildProblems,
	models.SectionPractice:  buildPractice,
	models.SectionCompete:   buildCompete,
	models.SectionTest:      buildTest,
	models.SectionAchieve:   buildAchieve,
	models.SectionCoins:     buildCoins,
}

// buildView renders section. Sections without a builder, and problems on a
// domain that has none, render the overview.
func buildView(section models.Section, in viewInput) *SectionView {
	if section == models.SectionProblems && !in.config.IsCoding() {
		return buildOverview(in)
	}
	build, ok := viewBuilders[section]
	if !ok {
		return buildOverview(in)
	}
	return build(in)
}

func buildOverview(in viewInput) *SectionView {
	name := in.user.Name
	if name == "" {
		name = "learner"
	}
	return &SectionView{
		Section: models.SectionDashboard,
		Overview: &OverviewView{
			Greeting:       fmt.Sprintf("Welcome back, %s", name),
			DomainName:     in.config.Name,
			Stats:          in.data.Stats,
			DailyChallenge: in.data.DailyChallenge,
			UpcomingEvents: in.data.UpcomingEvents,
			ProgressTopics: in.data.ProgressTopics,
			Streak:         in.state.Streak,
		},
	}
}

func buildLearn(in viewInput) *SectionView {
	return &SectionView{
		Section: models.SectionLearn,
		Learn: &LearnView{
			Terminology: in.terminology,
			Modules:     in.data.LearnModules,
			Sections:    domains.GenerateLearnContent(in.config),
		},
	}
}

func buildProblems(in viewInput) *SectionView {
	solved := 0
	for _, p := range in.data.Problems {
		if p.Solved {
			solved++
		}
	}
	return &SectionView{
		Section: models.SectionProblems,
		Problems: &ProblemsView{
			Problems: in.data.Problems,
			Solved:   solved,
			Total:    len(in.data.Problems),
		},
	}
}

func buildPractice(in viewInput) *SectionView {
	subjects := make([]PracticeSubject, 0, len(in.config.Subjects))
	for _, s := range in.config.Subjects {
		topics := 0
		for _, ch := range s.Chapters {
			topics += len(ch.Topics)
		}
		subjects = append(subjects, PracticeSubject{
			ID:       s.ID,
			Name:     s.Name,
			Chapters: len(s.Chapters),
			Topics:   topics,
		})
	}
	return &SectionView{
		Section: models.SectionPractice,
		Practice: &PracticeView{
			SubjectLabel:   in.terminology.Subject,
			Subjects:       subjects,
			ProgressTopics: in.data.ProgressTopics,
		},
	}
}

func buildCompete(in viewInput) *SectionView {
	return &SectionView{
		Section: models.SectionCompete,
		Compete: &CompeteView{
			Contests:       in.data.Contests,
			UpcomingEvents: in.data.UpcomingEvents,
		},
	}
}

func buildTest(in viewInput) *SectionView {
	attempted, total := 0, 0
	for _, t := range in.data.Tests {
		if t.Attempted {
			attempted++
			total += t.Score
		}
	}
	avg := 0
	if attempted > 0 {
		avg = total / attempted
	}
	return &SectionView{
		Section: models.SectionTest,
		Test: &TestView{
			Label:        in.terminology.Test,
			Tests:        in.data.Tests,
			Attempted:    attempted,
			AverageScore: avg,
		},
	}
}

func buildAchieve(in viewInput) *SectionView {
	unlocked := 0
	for _, a := range in.data.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	return &SectionView{
		Section: models.SectionAchieve,
		Achieve: &AchieveView{
			Achievements: in.data.Achievements,
			Unlocked:     unlocked,
			Streak:       in.state.Streak,
		},
	}
}

// buildCoins uses the live balance, not the dataset's starting value
func buildCoins(in viewInput) *SectionView {
	offers := make([]RewardOffer, 0, len(in.data.Rewards))
	for _, r := range in.data.Rewards {
		offers = append(offers, RewardOffer{Reward: r, Affordable: in.state.Coins >= r.Cost})
	}
	redeemed := slices.Clone(in.state.Redeemed)
	if redeemed == nil {
		redeemed = []string{}
	}
	return &SectionView{
		Section: models.SectionCoins,
		Coins: &CoinsView{
			Balance:  in.state.Coins,
			Rewards:  offers,
			Redeemed: redeemed,
		},
	}
}
