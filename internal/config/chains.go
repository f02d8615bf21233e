package config

import (
	"fmt"
)

// ChainConfig describes one supported network.
type ChainConfig struct {
	ChainId                uint64 `mapstructure:"chain-id"`
	Name                   string `mapstructure:"name"`
	RpcUrl                 string `mapstructure:"rpc-url"`
	NativeSymbol           string `mapstructure:"native-symbol"`
	BridgeAddress          string `mapstructure:"bridge-address"`
	Confirmations          uint64 `mapstructure:"confirmations"`
	IsDestinationOnlyClaim bool   `mapstructure:"is-destination-only-claim"`
}

// PairConfig registers an ordered (source, destination) combination for
// which a bridge route exists.
type PairConfig struct {
	FromChainId uint64 `mapstructure:"from-chain-id"`
	ToChainId   uint64 `mapstructure:"to-chain-id"`
}

type ChainsConfig struct {
	Networks []ChainConfig `mapstructure:"networks"`
	Pairs    []PairConfig  `mapstructure:"pairs"`
	// SignerKey is the hot key used to broadcast and claim on behalf of the
	// service. Hex encoded, no 0x prefix.
	SignerKey string `mapstructure:"signer-key"`
}

func (cfg *ChainsConfig) Validate() error {
	if len(cfg.Networks) == 0 {
		return fmt.Errorf("no networks configured")
	}

	seen := make(map[uint64]bool)
	for _, n := range cfg.Networks {
		if n.ChainId == 0 {
			return fmt.Errorf("invalid chain id for network %q", n.Name)
		}
		if seen[n.ChainId] {
			return fmt.Errorf("duplicate network chain id %d", n.ChainId)
		}
		seen[n.ChainId] = true
		if n.Name == "" {
			return fmt.Errorf("missing name for chain %d", n.ChainId)
		}
		if n.RpcUrl == "" {
			return fmt.Errorf("missing rpc url for chain %d", n.ChainId)
		}
	}

	if len(cfg.Pairs) == 0 {
		return fmt.Errorf("no bridge pairs configured")
	}

	for _, p := range cfg.Pairs {
		if p.FromChainId == p.ToChainId {
			return fmt.Errorf("bridge pair cannot connect chain %d to itself", p.FromChainId)
		}
		if !seen[p.FromChainId] || !seen[p.ToChainId] {
			return fmt.Errorf("bridge pair %d -> %d references an unconfigured network", p.FromChainId, p.ToChainId)
		}
	}

	return nil
}
