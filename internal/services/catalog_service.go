package services

import (
	"context"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

// catalogService exposes the static domain data. Every lookup is total.
type catalogService struct {
	registry *domains.Registry
	datasets *domains.DatasetProvider
}

func NewCatalogService(registry *domains.Registry, datasets *domains.DatasetProvider) CatalogService {
	return &catalogService{registry: registry, datasets: datasets}
}

func (s *catalogService) ListDomains(_ context.Context) []models.DomainConfig {
	return s.registry.List()
}

func (s *catalogService) Domain(_ context.Context, domainID string) models.DomainConfig {
	return s.registry.Lookup(domainID)
}

func (s *catalogService) Dataset(_ context.Context, domainID string) models.DomainData {
	return s.datasets.Dataset(domainID)
}

func (s *catalogService) LearnContent(_ context.Context, domainID string) []models.LearnSection {
	return domains.GenerateLearnContent(s.registry.Lookup(domainID))
}
