package domains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

func TestGenerateLearnContent_Deterministic(t *testing.T) {
	r := NewRegistry()

	for _, id := range append(supportedDomains, "unlisted-domain") {
		first := GenerateLearnContent(r.Lookup(id))
		second := GenerateLearnContent(r.Lookup(id))
		assert.Equal(t, first, second, id)
	}
}

func TestGenerateLearnContent_SectionLayout(t *testing.T) {
	cfg := NewRegistry().Lookup("jee")

	sections := GenerateLearnContent(cfg)

	want := []string{
		"overview", "trending",
		"physics-chapters", "chemistry-chapters", "mathematics-chapters",
		"physics-topics", "chemistry-topics", "mathematics-topics",
		"practice",
	}
	require.Len(t, sections, len(want))
	for i, id := range want {
		assert.Equal(t, id, sections[i].ID)
	}

	assert.Equal(t, "JEE Preparation Overview", sections[0].Title)
	assert.Len(t, sections[0].Items, 3)
	assert.Equal(t, "Trending Topics", sections[1].Title)
	assert.Equal(t, "Physics Chapters", sections[2].Title)
	assert.Equal(t, "Chapter 1: Mechanics", sections[2].Items[0].Title)
	assert.Equal(t, models.LearnTopics, sections[5].Kind)
	assert.Len(t, sections[5].Items, 6)
}

func TestGenerateLearnContent_CodingTerminology(t *testing.T) {
	sections := GenerateLearnContent(NewRegistry().Lookup("competitive-programming"))

	assert.Equal(t, "Trending Concepts", sections[1].Title)
	assert.Equal(t, "Algorithms Modules", sections[2].Title)
	assert.Equal(t, "Module 2: Dynamic Programming", sections[2].Items[1].Title)
	assert.Contains(t, codingInstructors, sections[0].Items[0].Instructor)
}

func TestGenerateLearnContent_TrendingIsCapped(t *testing.T) {
	sections := GenerateLearnContent(NewRegistry().Lookup("competitive-programming"))

	// seven chapters across the taxonomy, capped at six
	assert.Len(t, sections[1].Items, maxTrendingItems)
}

func TestGenerateLearnContent_PracticeGatedOnContentTypes(t *testing.T) {
	cfg := NewRegistry().Lookup("frontend")
	cfg.ContentTypes.Practice = false

	for _, sec := range GenerateLearnContent(cfg) {
		assert.NotEqual(t, models.LearnPractice, sec.Kind)
	}
}

func TestGenerateLearnContent_IndexTemplating(t *testing.T) {
	sections := GenerateLearnContent(NewRegistry().Lookup("gate"))

	var items []models.ContentItem
	for _, sec := range sections {
		items = append(items, sec.Items...)
	}
	require.NotEmpty(t, items)

	for i, item := range items {
		assert.Equal(t, FormatDuration(i), item.Duration)
		assert.Equal(t, FormatViews((i+1)*1370+420), item.Views)
		assert.Equal(t, examInstructors[i%len(examInstructors)], item.Instructor)
		assert.Equal(t, contentLevels[i%len(contentLevels)], item.Level)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "8:00", FormatDuration(0))
	assert.Equal(t, "9:07", FormatDuration(1))
	assert.Equal(t, "8:59", FormatDuration(17))
}

func TestFormatViews(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{420, "420"},
		{1790, "1.8K"},
		{12_000, "12.0K"},
		{2_460_000, "2.5M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatViews(tt.n))
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "coulomb-s-law", slug("Coulomb's Law"))
	assert.Equal(t, "bfs-dfs", slug("BFS & DFS"))
	assert.Equal(t, "ncr", slug("nCr"))
}
