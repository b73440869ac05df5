package demo

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// SourceConfig describes either a single point charge or a catalog
// file to load sources from -- at least one of the two must be given;
// when CatalogFile is set, the single-particle fields are ignored.
type SourceConfig struct {
	// Single-particle form.
	X, Y, Z, Q float64

	// Catalog form.
	CatalogFile                       string
	XCol, YCol, ZCol, QCol            int

	Name string
}

func (s *SourceConfig) CheckInit(name string) error {
	if s.CatalogFile == "" && s.Q == 0 {
		return fmt.Errorf(
			"Need to specify either a CatalogFile or a nonzero Q for Source '%s'", name,
		)
	}
	s.Name = name
	return nil
}

// BoxConfig describes one octree box: its center, half-width, and,
// for the root box, the order P to run the convergence sweep up to.
type BoxConfig struct {
	// Required
	X, Y, Z, HalfWidth float64

	// Optional
	MaxP int
	Name string
}

func (b *BoxConfig) CheckInit(name string) error {
	if b.HalfWidth <= 0 {
		return fmt.Errorf(
			"Need to specify a positive HalfWidth for Box '%s'", name,
		)
	}
	b.Name = name
	if b.MaxP == 0 {
		b.MaxP = 6
	}
	return nil
}

// TargetConfig describes a single evaluation point.
type TargetConfig struct {
	X, Y, Z float64
	Name    string
}

func (t *TargetConfig) CheckInit(name string) error {
	t.Name = name
	return nil
}

// RunConfig is the top-level gcfg layout for lapfmmdemo: a set of
// named sources, boxes, and targets loaded from an ini-style file with
// sections like "[Source particle1]" and "[Box root]".
type RunConfig struct {
	Source map[string]*SourceConfig
	Box    map[string]*BoxConfig
	Target map[string]*TargetConfig
}

// Load reads path into a RunConfig and validates every section.
func Load(path string) (*RunConfig, error) {
	cfg := &RunConfig{}
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, err
	}

	for name, s := range cfg.Source {
		if err := s.CheckInit(name); err != nil {
			return nil, err
		}
	}
	for name, b := range cfg.Box {
		if err := b.CheckInit(name); err != nil {
			return nil, err
		}
	}
	for name, tg := range cfg.Target {
		if err := tg.CheckInit(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
