package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

// ServiceManagerDeps holds everything the services are built from
type ServiceManagerDeps struct {
	Repo      repositories.SessionRepository
	Registry  *domains.Registry
	Datasets  *domains.DatasetProvider
	Verifier  OTPVerifier
	Publisher events.EventPublisher
	Logger    *slog.Logger
	Validator *validator.Validator
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps ServiceManagerDeps

	// Service instances
	onboardingService OnboardingService
	dashboardService  DashboardService
	catalogService    CatalogService
	reportService     ReportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps ServiceManagerDeps) ServiceManager {
	return &serviceManager{deps: deps}
}

// Initialize sets up all services and checks the session store is reachable
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.deps.Logger.Info("Initializing service manager")

	if err := sm.initializeServices(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("session store health check failed: %w", err)
	}

	sm.initialized = true
	sm.deps.Logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) initializeServices() error {
	d := sm.deps
	if d.Repo == nil || d.Registry == nil || d.Datasets == nil {
		return fmt.Errorf("session store, registry and datasets are required")
	}
	if d.Verifier == nil {
		d.Verifier = DemoOTPVerifier{}
	}
	if d.Validator == nil {
		d.Validator = validator.New()
	}

	sm.onboardingService = NewOnboardingService(d.Repo, d.Registry, d.Datasets, d.Verifier, d.Publisher, d.Logger, d.Validator)
	sm.deps.Logger.Info("Onboarding service initialized")

	sm.dashboardService = NewDashboardService(d.Repo, d.Registry, d.Datasets, d.Publisher, d.Logger, d.Validator)
	sm.deps.Logger.Info("Dashboard service initialized")

	sm.catalogService = NewCatalogService(d.Registry, d.Datasets)
	sm.reportService = NewReportService(d.Repo, d.Registry, d.Datasets, d.Logger)
	return nil
}

// Service getters
func (sm *serviceManager) Onboarding() OnboardingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.onboardingService
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.dashboardService
}

func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.catalogService
}

func (sm *serviceManager) Report() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.reportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("session store health check failed: %w", err)
	}
	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if sm.deps.Publisher != nil {
		if err := sm.deps.Publisher.Close(); err != nil {
			sm.deps.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down completed")
	return nil
}

// IsInitialized returns whether the service manager has been initialized
func (sm *serviceManager) IsInitialized() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.initialized
}

// InitializeServiceManager builds and initializes a manager in one call
func InitializeServiceManager(ctx context.Context, deps ServiceManagerDeps) (ServiceManager, error) {
	sm := &serviceManager{deps: deps}
	if err := sm.Initialize(ctx); err != nil {
		return nil, err
	}
	return sm, nil
}
