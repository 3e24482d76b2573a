package domains

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

const defaultDatasetID = "default"

//go:embed datasets/*.yaml
var datasetFS embed.FS

// DatasetProvider serves the literal dashboard data for each domain
type DatasetProvider struct {
	datasets map[string]models.DomainData
}

// NewDatasetProvider decodes the embedded datasets
func NewDatasetProvider() (*DatasetProvider, error) {
	return LoadDatasets(datasetFS, "datasets")
}

// LoadDatasets decodes every *.yaml file under dir; the file name without
// extension is the domain identifier. A default.yaml document is required.
func LoadDatasets(fsys fs.FS, dir string) (*DatasetProvider, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}

	p := &DatasetProvider{datasets: make(map[string]models.DomainData)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", name, err)
		}

		var data models.DomainData
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse dataset %s: %w", name, err)
		}

		id := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		p.datasets[id] = data
	}

	if _, ok := p.datasets[defaultDatasetID]; !ok {
		return nil, fmt.Errorf("dataset %q is missing", defaultDatasetID)
	}

	slog.Debug("domain datasets loaded", "count", len(p.datasets))
	return p, nil
}

// Dataset returns a copy of the data for id, falling back to the default
// dataset for identifiers without their own document.
func (p *DatasetProvider) Dataset(id string) models.DomainData {
	data, ok := p.datasets[id]
	if !ok {
		data = p.datasets[defaultDatasetID]
	}
	return cloneData(data)
}

// Has reports whether id has its own dataset
func (p *DatasetProvider) Has(id string) bool {
	if id == defaultDatasetID {
		return false
	}
	_, ok := p.datasets[id]
	return ok
}

func cloneData(d models.DomainData) models.DomainData {
	d.Stats = slices.Clone(d.Stats)
	d.UpcomingEvents = slices.Clone(d.UpcomingEvents)
	d.ProgressTopics = slices.Clone(d.ProgressTopics)
	d.LearnModules = slices.Clone(d.LearnModules)
	d.Contests = slices.Clone(d.Contests)
	d.Tests = slices.Clone(d.Tests)
	d.Achievements = slices.Clone(d.Achievements)
	d.Rewards = slices.Clone(d.Rewards)

	problems := slices.Clone(d.Problems)
	for i := range problems {
		problems[i].Tags = slices.Clone(problems[i].Tags)
	}
	d.Problems = problems
	return d
}
