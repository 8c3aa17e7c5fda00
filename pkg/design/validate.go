package design

import "fmt"

// ValidationSeverity indicates whether a finding blocks rendering or is
// merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks rendering
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Concept  string             // concept key
	Panel    string             // panel name, empty if concept-level
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Panel == "" {
		return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Concept, e.Message)
	}
	return fmt.Sprintf("[%s] %s/%s: %s", e.Severity, e.Concept, e.Panel, e.Message)
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// OK reports whether there are no blocking errors.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs every check on a and splits findings by severity. It never
// mutates a.
func Validate(a *Assembly) ValidationResult {
	var all []ValidationError
	all = append(all, validateNotEmpty(a)...)
	all = append(all, validateDimensions(a)...)
	all = append(all, validateNames(a)...)
	all = append(all, validateConnections(a)...)
	all = append(all, validateHoles(a)...)

	var res ValidationResult
	for _, v := range all {
		if v.Severity == SeverityError {
			res.Errors = append(res.Errors, v)
		} else {
			res.Warnings = append(res.Warnings, v)
		}
	}
	return res
}

// ValidateCatalog validates every concept and additionally rejects
// duplicate concept keys.
func ValidateCatalog(c *Catalog) ValidationResult {
	var res ValidationResult
	seen := make(map[string]bool)
	for _, a := range c.Concepts {
		if seen[a.Key] {
			res.Errors = append(res.Errors, ValidationError{
				Concept:  a.Key,
				Message:  "duplicate concept key",
				Severity: SeverityError,
			})
		}
		seen[a.Key] = true
		r := Validate(a)
		res.Errors = append(res.Errors, r.Errors...)
		res.Warnings = append(res.Warnings, r.Warnings...)
	}
	return res
}

func validateNotEmpty(a *Assembly) []ValidationError {
	if len(a.Panels) > 0 {
		return nil
	}
	return []ValidationError{{
		Concept:  a.Key,
		Message:  "concept has no panels",
		Severity: SeverityError,
	}}
}

// validateDimensions checks that every panel has positive width, depth and
// thickness.
func validateDimensions(a *Assembly) []ValidationError {
	var errs []ValidationError
	for _, p := range a.Panels {
		for _, d := range []struct {
			name string
			v    float64
		}{{"width", p.Width}, {"depth", p.Depth}, {"thickness", p.Thickness}} {
			if d.v <= 0 {
				errs = append(errs, ValidationError{
					Concept:  a.Key,
					Panel:    p.Name,
					Message:  fmt.Sprintf("%s is %.4f, must be positive", d.name, d.v),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

func validateNames(a *Assembly) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)
	for i, p := range a.Panels {
		if p.Name == "" {
			errs = append(errs, ValidationError{
				Concept:  a.Key,
				Message:  fmt.Sprintf("panel %d has no name", i),
				Severity: SeverityError,
			})
			continue
		}
		if seen[p.Name] {
			errs = append(errs, ValidationError{
				Concept:  a.Key,
				Panel:    p.Name,
				Message:  "duplicate panel name",
				Severity: SeverityError,
			})
		}
		seen[p.Name] = true
	}
	return errs
}

// connKey is order-independent so (a,b) and (b,a) collide.
type connKey struct{ lo, hi int }

func makeConnKey(c Connection) connKey {
	if c.A <= c.B {
		return connKey{c.A, c.B}
	}
	return connKey{c.B, c.A}
}

func validateConnections(a *Assembly) []ValidationError {
	var errs []ValidationError
	seen := make(map[connKey]bool)
	n := len(a.Panels)
	for _, c := range a.Connections {
		if c.A < 0 || c.A >= n || c.B < 0 || c.B >= n {
			errs = append(errs, ValidationError{
				Concept:  a.Key,
				Message:  fmt.Sprintf("connection (%d,%d) references a panel outside 0..%d", c.A, c.B, n-1),
				Severity: SeverityError,
			})
			continue
		}
		if c.A == c.B {
			errs = append(errs, ValidationError{
				Concept:  a.Key,
				Message:  fmt.Sprintf("connection (%d,%d) joins a panel to itself", c.A, c.B),
				Severity: SeverityError,
			})
			continue
		}
		k := makeConnKey(c)
		if seen[k] {
			errs = append(errs, ValidationError{
				Concept:  a.Key,
				Message:  fmt.Sprintf("duplicate connection (%d,%d)", c.A, c.B),
				Severity: SeverityError,
			})
		}
		seen[k] = true
	}
	return errs
}

// validateHoles warns about holes that fall outside the panel footprint.
// Holes are drilled through Z, so only X and Y are checked.
func validateHoles(a *Assembly) []ValidationError {
	var warnings []ValidationError
	for _, p := range a.Panels {
		for i, h := range p.Holes {
			if h.X < 0 || h.X > p.Width || h.Y < 0 || h.Y > p.Depth {
				warnings = append(warnings, ValidationError{
					Concept:  a.Key,
					Panel:    p.Name,
					Message:  fmt.Sprintf("hole %d at (%.3g, %.3g) lies outside the %.3g x %.3g panel", i, h.X, h.Y, p.Width, p.Depth),
					Severity: SeverityWarning,
				})
			}
		}
	}
	return warnings
}
