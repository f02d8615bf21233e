package chains

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/beemeeupnow/bridge-api-service/internal/config"
)

// NetworkDetail is the static directory entry for one supported network.
type NetworkDetail struct {
	ChainId                uint64 `json:"chain_id"`
	Name                   string `json:"name"`
	NativeSymbol           string `json:"native_symbol"`
	IsDestinationOnlyClaim bool   `json:"is_destination_only_claim"`
}

// Registry is the directory of supported networks, their mutual bridge
// pairs, and the status provider serving each network. Reads vastly
// outnumber writes; writes only happen during startup.
type Registry struct {
	mu        sync.RWMutex
	networks  map[uint64]NetworkDetail
	pairs     map[uint64]map[uint64]bool
	providers map[uint64]StatusProvider
}

func NewRegistry() *Registry {
	return &Registry{
		networks:  make(map[uint64]NetworkDetail),
		pairs:     make(map[uint64]map[uint64]bool),
		providers: make(map[uint64]StatusProvider),
	}
}

// ProviderFactory builds the status provider for one configured network.
type ProviderFactory func(cfg config.ChainConfig, signerKey string) (StatusProvider, error)

// Build populates a registry from config, constructing a provider per
// network through the given factory. Each provider's endpoint is asked for
// its chain id and must agree with the configured one; a config pointing a
// network at the wrong RPC url fails here instead of misrouting transfers
// at runtime.
func Build(ctx context.Context, cfg config.ChainsConfig, factory ProviderFactory) (*Registry, error) {
	r := NewRegistry()
	for _, n := range cfg.Networks {
		provider, err := factory(n, cfg.SignerKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider for chain %d: %w", n.ChainId, err)
		}
		activeChainId, err := provider.ActiveNetwork(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query chain id from rpc for chain %d: %w", n.ChainId, err)
		}
		if activeChainId != n.ChainId {
			return nil, fmt.Errorf("rpc for chain %d serves chain %d", n.ChainId, activeChainId)
		}
		r.AddNetwork(NetworkDetail{
			ChainId:                n.ChainId,
			Name:                   n.Name,
			NativeSymbol:           n.NativeSymbol,
			IsDestinationOnlyClaim: n.IsDestinationOnlyClaim,
		}, provider)
	}
	for _, p := range cfg.Pairs {
		if err := r.AddPair(p.FromChainId, p.ToChainId); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) AddNetwork(detail NetworkDetail, provider StatusProvider) {
	r.mu.Lock()
	r.networks[detail.ChainId] = detail
	r.providers[detail.ChainId] = provider
	r.mu.Unlock()
}

func (r *Registry) AddPair(fromChainId, toChainId uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fromChainId == toChainId {
		return fmt.Errorf("cannot pair chain %d with itself", fromChainId)
	}
	if _, ok := r.networks[fromChainId]; !ok {
		return fmt.Errorf("unknown source chain %d", fromChainId)
	}
	if _, ok := r.networks[toChainId]; !ok {
		return fmt.Errorf("unknown destination chain %d", toChainId)
	}

	if r.pairs[fromChainId] == nil {
		r.pairs[fromChainId] = make(map[uint64]bool)
	}
	r.pairs[fromChainId][toChainId] = true
	return nil
}

// IsValidPair reports whether a bridge route is registered for the ordered
// (source, destination) combination.
func (r *Registry) IsValidPair(fromChainId, toChainId uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pairs[fromChainId][toChainId]
}

func (r *Registry) NetworkDetail(chainId uint64) (NetworkDetail, bool) {
	r.mu.RLock()
	detail, ok := r.networks[chainId]
	r.mu.RUnlock()
	return detail, ok
}

func (r *Registry) Provider(chainId uint64) (StatusProvider, error) {
	r.mu.RLock()
	provider, ok := r.providers[chainId]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no provider registered for chain %d", chainId)
	}
	return provider, nil
}

// Networks returns all registered networks ordered by chain id.
func (r *Registry) Networks() []NetworkDetail {
	r.mu.RLock()
	details := make([]NetworkDetail, 0, len(r.networks))
	for _, d := range r.networks {
		details = append(details, d)
	}
	r.mu.RUnlock()

	sort.Slice(details, func(i, j int) bool {
		return details[i].ChainId < details[j].ChainId
	})
	return details
}
