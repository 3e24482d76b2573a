package domains

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatasetProvider(t *testing.T) {
	p, err := NewDatasetProvider()
	require.NoError(t, err)

	for _, id := range []string{"competitive-programming", "frontend", "jee", "neet"} {
		t.Run(id, func(t *testing.T) {
			assert.True(t, p.Has(id))

			data := p.Dataset(id)
			assert.Positive(t, data.Coins)
			assert.NotEmpty(t, data.Stats)
			assert.NotEmpty(t, data.DailyChallenge.ID)
			assert.NotEmpty(t, data.ProgressTopics)
			assert.NotEmpty(t, data.LearnModules)
			assert.NotEmpty(t, data.Tests)
			assert.NotEmpty(t, data.Achievements)
			assert.NotEmpty(t, data.Rewards)
			for _, topic := range data.ProgressTopics {
				assert.GreaterOrEqual(t, topic.Progress, 0)
				assert.LessOrEqual(t, topic.Progress, 100)
			}
		})
	}
}

func TestDatasetProvider_EverySupportedDomainResolves(t *testing.T) {
	p, err := NewDatasetProvider()
	require.NoError(t, err)

	for _, id := range supportedDomains {
		data := p.Dataset(id)
		assert.NotEmpty(t, data.Stats, id)
		assert.NotEmpty(t, data.DailyChallenge.Title, id)
	}
}

func TestDatasetProvider_UnknownFallsBackToDefault(t *testing.T) {
	p, err := NewDatasetProvider()
	require.NoError(t, err)

	want := p.datasets[defaultDatasetID]
	got := p.Dataset("underwater-basket-weaving")

	assert.False(t, p.Has("underwater-basket-weaving"))
	assert.False(t, p.Has(defaultDatasetID))
	assert.Equal(t, want, got)
	assert.Equal(t, "dc-default", got.DailyChallenge.ID)
}

func TestDatasetProvider_DatasetReturnsCopy(t *testing.T) {
	p, err := NewDatasetProvider()
	require.NoError(t, err)

	data := p.Dataset("competitive-programming")
	data.Coins = 0
	data.Stats[0].Value = "changed"
	data.Problems[0].Tags[0] = "changed"

	again := p.Dataset("competitive-programming")
	assert.Equal(t, 1250, again.Coins)
	assert.Equal(t, "247", again.Stats[0].Value)
	assert.Equal(t, "arrays", again.Problems[0].Tags[0])
}

func TestLoadDatasets(t *testing.T) {
	t.Run("missing default", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/jee.yaml": {Data: []byte("coins: 10\n")},
		}
		_, err := LoadDatasets(fsys, "data")
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/default.yaml": {Data: []byte("coins: [not, a, number\n")},
		}
		_, err := LoadDatasets(fsys, "data")
		assert.Error(t, err)
	})

	t.Run("ignores other files", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/default.yaml": {Data: []byte("coins: 10\nstreak: 2\n")},
			"data/README.md":    {Data: []byte("# notes")},
			"data/gate.yml":     {Data: []byte("coins: 42\n")},
		}
		p, err := LoadDatasets(fsys, "data")
		require.NoError(t, err)
		assert.Equal(t, 10, p.Dataset("anything").Coins)
		assert.Equal(t, 42, p.Dataset("gate").Coins)
		assert.Len(t, p.datasets, 2)
	})
}
