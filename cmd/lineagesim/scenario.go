package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lineagesim/density"
	"lineagesim/sim"
	"lineagesim/tree"
)

// scenario is the YAML description of one simulation run.
//
// Either newick or branches must define the topology. density is optional;
// when present it must cover every branch with one weight per bin.
type scenario struct {
	Newick   string               `yaml:"newick"`
	Branches []scenarioBranch     `yaml:"branches"`
	Genes    int                  `yaml:"genes"`
	Cells    int                  `yaml:"cells"`
	Seed     uint64               `yaml:"seed"`
	Model    string               `yaml:"model"`
	Scale    float64              `yaml:"scaleSigma"`
	Density  map[string][]float64 `yaml:"density"`
}

type scenarioBranch struct {
	Label  string `yaml:"label"`
	Parent string `yaml:"parent"`
	Len    int    `yaml:"len"`
}

// loadScenario reads and decodes one YAML scenario file.
func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &sc, nil
}

// toConfig translates the scenario into a pipeline Config.
func (sc *scenario) toConfig() (sim.Config, error) {
	cfg := sim.Config{
		Newick:     sc.Newick,
		GeneCount:  sc.Genes,
		Cells:      sc.Cells,
		Seed:       sc.Seed,
		ScaleSigma: sc.Scale,
	}

	for _, b := range sc.Branches {
		cfg.Specs = append(cfg.Specs, toBranchSpec(b))
	}
	if sc.Density != nil {
		cfg.Density = density.Map(sc.Density)
	}

	switch sc.Model {
	case "", "walk":
		cfg.Model = sim.ModelWalk
	case "modules":
		cfg.Model = sim.ModelModules
	default:
		return sim.Config{}, fmt.Errorf("%w: %q (want walk or modules)", sim.ErrBadModel, sc.Model)
	}
	return cfg, nil
}

func toBranchSpec(b scenarioBranch) tree.BranchSpec {
	return tree.BranchSpec{Label: b.Label, Parent: b.Parent, Len: b.Len}
}
