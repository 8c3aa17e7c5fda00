package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/chazu/benchdraw/internal/config"
	"github.com/chazu/benchdraw/pkg/concepts"
	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/engine"
)

// loadConfig reads path, or benchdraw.toml in the working directory when
// path is empty and that file exists. Without either it returns defaults.
func (c *CLI) loadConfig(path string) (config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err != nil {
			return config.Default(), nil
		}
		path = config.DefaultFile
	}
	cfg, warnings, err := config.Load(path)
	for _, w := range warnings {
		c.Logger.Warn(w, "file", path)
	}
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("Loaded config", "file", path)
	return cfg, nil
}

// loadCatalog evaluates the design file at path, or the built-in concepts
// when path is empty. DSL warnings are logged.
func (c *CLI) loadCatalog(path string) (*design.Catalog, error) {
	eng := engine.NewEngine()

	var (
		cat      *design.Catalog
		warnings []engine.EvalWarning
		err      error
	)
	if path == "" {
		cat, warnings, err = concepts.Load(eng)
	} else {
		var src []byte
		src, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read design: %w", err)
		}
		cat, warnings, err = concepts.LoadSource(eng, path, string(src))
	}
	for _, w := range warnings {
		c.Logger.Warn(w.String())
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("Loaded catalog", "concepts", len(cat.Concepts))
	return cat, nil
}

// selectConcepts returns the concepts named by keys in the given order, or
// every concept when keys is empty.
func selectConcepts(cat *design.Catalog, keys []string) ([]*design.Assembly, error) {
	if len(keys) == 0 {
		if len(cat.Concepts) == 0 {
			return nil, errors.New("catalog has no concepts")
		}
		return cat.Concepts, nil
	}
	missing := lo.Filter(keys, func(k string, _ int) bool { return cat.Lookup(k) == nil })
	if len(missing) > 0 {
		return nil, fmt.Errorf("unknown concept(s): %v (available: %v)", missing, cat.Keys())
	}
	return lo.Map(lo.Uniq(keys), func(k string, _ int) *design.Assembly { return cat.Lookup(k) }), nil
}

// logValidation reports findings and returns an error joining the blocking
// ones.
func (c *CLI) logValidation(res design.ValidationResult) error {
	for _, w := range res.Warnings {
		c.Logger.Warn(w.Message, "concept", w.Concept, "panel", w.Panel)
	}
	if res.OK() {
		return nil
	}
	return errors.Join(lo.Map(res.Errors, func(e design.ValidationError, _ int) error { return e })...)
}
