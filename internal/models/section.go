package models

type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionLearn     Section = "learn"
	SectionProblems  Section = "problems"
	SectionPractice  Section = "practice"
	SectionCompete   Section = "compete"
	SectionTest      Section = "test"
	SectionAchieve   Section = "achieve"
	SectionCoins     Section = "coins"
)

var allSections = []Section{
	SectionDashboard, SectionLearn, SectionProblems, SectionPractice,
	SectionCompete, SectionTest, SectionAchieve, SectionCoins,
}

// Sections returns every section in navigation order
func Sections() []Section {
	out := make([]Section, len(allSections))
	copy(out, allSections)
	return out
}

func (s Section) IsValid() bool {
	for _, known := range allSections {
		if s == known {
			return true
		}
	}
	return false
}
