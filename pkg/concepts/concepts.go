// Package concepts embeds the built-in bench catalog.
package concepts

import (
	"embed"
	"errors"
	"fmt"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/engine"
)

//go:embed *.bench
var files embed.FS

// Files lists the embedded sources in catalog order.
var Files = []string{"concept-4.bench", "concept-2.bench"}

// Source returns the text of one embedded file.
func Source(name string) (string, error) {
	b, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("embedded concept %s: %w", name, err)
	}
	return string(b), nil
}

// Load evaluates every embedded file with eng and merges the results in
// Files order. Each file runs in its own sandbox.
func Load(eng *engine.Engine) (*design.Catalog, []engine.EvalWarning, error) {
	cat := design.NewCatalog()
	var warnings []engine.EvalWarning
	for _, name := range Files {
		src, err := Source(name)
		if err != nil {
			return nil, nil, err
		}
		c, w, err := LoadSource(eng, name, src)
		if err != nil {
			return nil, nil, err
		}
		for _, a := range c.Concepts {
			cat.Add(a)
		}
		warnings = append(warnings, w...)
	}
	return cat, warnings, nil
}

// LoadSource evaluates one design source. Eval errors are joined into the
// returned error, each prefixed with name.
func LoadSource(eng *engine.Engine, name, src string) (*design.Catalog, []engine.EvalWarning, error) {
	res, err := eng.Run(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(res.Errors) > 0 {
		errs := make([]error, len(res.Errors))
		for i, e := range res.Errors {
			errs[i] = fmt.Errorf("%s: %w", name, e)
		}
		return nil, res.Warnings, errors.Join(errs...)
	}
	return res.Catalog, res.Warnings, nil
}
