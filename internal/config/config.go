// Package config maps YAML model files to grid and physical inputs for
// the QG core.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/qgsim/internal/grid"
	"github.com/san-kum/qgsim/internal/qg"
)

const (
	DefaultNx   = 64
	DefaultNy   = 64
	DefaultLx   = 6.283185307179586
	DefaultLy   = 6.283185307179586
	DefaultG    = 9.81
	DefaultF0   = 1.0
	DefaultBeta = 1.0
	DefaultNnu  = 2
)

type Config struct {
	Nx int     `yaml:"nx"`
	Ny int     `yaml:"ny"`
	Lx float64 `yaml:"lx"`
	Ly float64 `yaml:"ly"`

	Nlayers int     `yaml:"nlayers"`
	G       float64 `yaml:"g"`
	F0      float64 `yaml:"f0"`
	Beta    float64 `yaml:"beta"`

	Rho []float64 `yaml:"rho"`
	H   []float64 `yaml:"h"`
	U   []float64 `yaml:"u"`

	Mu  float64 `yaml:"mu"`
	Nu  float64 `yaml:"nu"`
	Nnu int     `yaml:"nnu"`
}

func DefaultConfig() *Config {
	return &Config{
		Nx: DefaultNx, Ny: DefaultNy,
		Lx: DefaultLx, Ly: DefaultLy,
		Nlayers: 2,
		G:       DefaultG,
		F0:      DefaultF0,
		Beta:    DefaultBeta,
		Rho:     []float64{1.0, 1.01},
		H:       []float64{0.5, 0.5},
		U:       []float64{0.05, 0.0},
		Mu:      0.01,
		Nu:      0,
		Nnu:     DefaultNnu,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the grid, parameter bundle and model described by
// the config. Forcing may be nil for unforced runs.
func (c *Config) Build(forcing qg.ForcingGenerator) (*qg.Model, error) {
	g, err := grid.New(c.Nx, c.Ny, c.Lx, c.Ly)
	if err != nil {
		return nil, err
	}
	p, err := qg.NewParams(g, qg.Inputs{
		Nlayers: c.Nlayers,
		G:       c.G,
		F0:      c.F0,
		Beta:    c.Beta,
		Rho:     c.Rho,
		H:       c.H,
		U:       c.U,
		Mu:      c.Mu,
		Nu:      c.Nu,
		Nnu:     c.Nnu,
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"nlayers": c.Nlayers,
		"grid":    [2]int{c.Nx, c.Ny},
	}).Info("model built")
	return qg.New(p, g, forcing), nil
}
