package metadata

import (
	"context"
	"fmt"
	"sync"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

// Provider retrieves public artist metadata from one source. Implementations
// must sanitize upstream values: popularity in [0,100], followers >= 0.
type Provider interface {
	// SearchArtists returns up to limit candidates matching the query.
	SearchArtists(ctx context.Context, query, market string, limit int) ([]domain.Artist, error)
	// GetArtist returns the full metadata for a known artist id.
	GetArtist(ctx context.Context, id string) (*domain.Artist, error)
	// SearchTracks returns tracks attributed to the named artist.
	SearchTracks(ctx context.Context, artistName, market string, limit int) ([]domain.Track, error)
}

// ProviderFactory creates a Provider from a credentials profile path.
type ProviderFactory func(ctx context.Context, profilePath string) (Provider, error)

// Registry manages metadata provider factories keyed by source name.
type Registry interface {
	// Register adds a new source factory
	Register(source string, factory ProviderFactory) error
	// Create instantiates a provider for the given source using the provided profile
	Create(ctx context.Context, source, profilePath string) (Provider, error)
	// ListSources returns the registered source names
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewRegistry creates a provider registry pre-populated with the given factories.
func NewRegistry(factories map[string]ProviderFactory) Registry {
	r := &registry{factories: make(map[string]ProviderFactory)}
	for source, factory := range factories {
		_ = r.Register(source, factory)
	}
	return r
}

func (r *registry) Register(source string, factory ProviderFactory) error {
	if source == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[source]; exists {
		return fmt.Errorf("source %q is already registered", source)
	}

	r.factories[source] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, source, profilePath string) (Provider, error) {
	r.mu.RLock()
	factory, exists := r.factories[source]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", source)
	}

	return factory(ctx, profilePath)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]string, 0, len(r.factories))
	for source := range r.factories {
		sources = append(sources, source)
	}
	return sources
}
