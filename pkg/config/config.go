// Package config loads custom network configuration for ens-go. A config
// file lets deployments on private or forked chains supply their own
// contract directory instead of the built-in one.
package config

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/ethns-dev/ens-go/pkg/contracts"
)

// Config is the top-level structure of an ens-go config file.
type Config struct {
	// Networks maps chain ids to contract address overrides.
	Networks map[uint64]Network `yaml:"networks"`
}

// Network is a set of contract addresses for one chain, keyed by role name
// (see contracts.Roles).
type Network struct {
	Contracts map[string]string `yaml:"contracts"`
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every configured role is known and every address is
// a well-formed non-zero hex address.
func (c Config) Validate() error {
	known := make(map[string]bool)
	for _, r := range contracts.Roles() {
		known[string(r)] = true
	}
	for chain, net := range c.Networks {
		if len(net.Contracts) == 0 {
			return fmt.Errorf("network %d: no contracts configured", chain)
		}
		for role, addr := range net.Contracts {
			if !known[role] {
				return fmt.Errorf("network %d: %w: %q", chain, contracts.ErrUnknownRole, role)
			}
			if !common.IsHexAddress(addr) {
				return fmt.Errorf("network %d: role %q: invalid address %q", chain, role, addr)
			}
			if common.HexToAddress(addr) == (common.Address{}) {
				return fmt.Errorf("network %d: role %q: zero address", chain, role)
			}
		}
	}
	return nil
}

// Directory merges the configured networks into the given base directory
// and returns the result.
func (c Config) Directory(base contracts.Directory) contracts.Directory {
	res := base
	for chain, net := range c.Networks {
		overrides := make(map[contracts.Role]common.Address, len(net.Contracts))
		for role, addr := range net.Contracts {
			overrides[contracts.Role(role)] = common.HexToAddress(addr)
		}
		res = res.WithOverrides(chain, overrides)
	}
	return res
}
