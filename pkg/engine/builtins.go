package engine

import (
	"fmt"
	"sort"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms design source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: drawing-explode -> drawing_explode
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a point; it is what vec3 and hole return.
type sexpVec3 struct {
	vec geom.Point3D
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpPanel wraps a panel built by `panel` until a concept claims it.
type sexpPanel struct {
	panel design.Panel
}

func (p *sexpPanel) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(panel %q %gx%gx%g)", p.panel.Name, p.panel.Width, p.panel.Depth, p.panel.Thickness)
}
func (p *sexpPanel) Type() *zygo.RegisteredType { return nil }

// sexpConnection wraps a panel index pair.
type sexpConnection struct {
	conn design.Connection
}

func (c *sexpConnection) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(connect %d %d)", c.conn.A, c.conn.B)
}
func (c *sexpConnection) Type() *zygo.RegisteredType { return nil }

// sexpExplode wraps an explode spec.
type sexpExplode struct {
	spec design.ExplodeSpec
}

func (e *sexpExplode) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(explode :axis :%s :distance %g)", e.spec.Axis, e.spec.Distance)
}
func (e *sexpExplode) Type() *zygo.RegisteredType { return nil }

// sexpConceptRef is returned by `concept` so scripts can print it.
type sexpConceptRef struct {
	key string
}

func (c *sexpConceptRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(concept %q)", c.key)
}
func (c *sexpConceptRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// unknown returns the keywords in pa that are not in allowed, sorted.
func (pa kwArgs) unknown(allowed ...string) []string {
	ok := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		ok[a] = true
	}
	var out []string
	for k := range pa.kw {
		if !ok[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an integer index.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_z) and plain strings ("z").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toAxis converts a keyword or string to a design.Axis.
func toAxis(s zygo.Sexp) (design.Axis, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected axis keyword (:x, :y, :z): %w", err)
	}
	return design.ParseAxis(name)
}

// toVec3 extracts a point from a sexpVec3.
func toVec3(s zygo.Sexp) (geom.Point3D, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return geom.Point3D{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toExplode extracts an explode spec.
func toExplode(s zygo.Sexp) (design.ExplodeSpec, error) {
	if e, ok := s.(*sexpExplode); ok {
		return e.spec, nil
	}
	return design.ExplodeSpec{}, fmt.Errorf("expected explode, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Catalog builder
// ---------------------------------------------------------------------------

// Explode defaults for concepts that leave them out.
var (
	defaultDrawingExplode = design.ExplodeSpec{Axis: design.AxisZ, Distance: 5}
	defaultExplodeAxis    = design.AxisZ
)

// builder collects concepts and warnings while the source runs.
type builder struct {
	catalog  *design.Catalog
	warnings []EvalWarning
}

func newBuilder() *builder {
	return &builder{catalog: design.NewCatalog()}
}

func (b *builder) warn(form, format string, args ...any) {
	b.warnings = append(b.warnings, EvalWarning{Form: form, Message: fmt.Sprintf(format, args...)})
}

func (b *builder) warnUnknown(form string, pa kwArgs, allowed ...string) {
	for _, k := range pa.unknown(allowed...) {
		b.warn(form, "unknown keyword :%s ignored", k)
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the design DSL builtins into a zygomys
// environment. Concepts are appended to b.catalog as they are evaluated.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *builder) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}

		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}

		return &sexpVec3{vec: geom.Pt(x, y, z)}, nil
	})

	// -----------------------------------------------------------------------
	// (hole 2 2) or (hole 2 2 0), relative to the panel origin
	// -----------------------------------------------------------------------
	env.AddFunction("hole", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 && len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("hole requires 2 or 3 arguments, got %d", len(args))
		}
		var c [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hole: coordinate %d: %w", i, err)
			}
			c[i] = f
		}
		return &sexpVec3{vec: geom.Pt(c[0], c[1], c[2])}, nil
	})

	// -----------------------------------------------------------------------
	// (panel "Seat Panel" :width 60 :depth 11 :thickness 0.125
	//        :at (vec3 0 0 16) :holes (list (hole 2 2) ...)
	//        :material "304 Stainless Steel" :color "white"
	//        :exploded-color "#d4d4d4")
	// -----------------------------------------------------------------------
	env.AddFunction("panel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("panel requires a name argument")
		}
		panelName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("panel: name: %w", err)
		}

		p := design.Panel{Name: panelName}
		for _, dim := range []struct {
			kw  string
			dst *float64
		}{{"width", &p.Width}, {"depth", &p.Depth}, {"thickness", &p.Thickness}} {
			v, ok := pa.kw[dim.kw]
			if !ok {
				return zygo.SexpNull, fmt.Errorf("panel %q: missing :%s", panelName, dim.kw)
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("panel %q: %s: %w", panelName, dim.kw, err)
			}
			*dim.dst = f
		}

		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("panel %q: at: %w", panelName, err)
			}
			p.Position = vec
		}
		if v, ok := pa.kw["holes"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("panel %q: holes: %w", panelName, err)
			}
			for _, item := range items {
				h, err := toVec3(item)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("panel %q: hole entry: %w", panelName, err)
				}
				p.Holes = append(p.Holes, h)
			}
		}
		for _, s := range []struct {
			kw  string
			dst *string
		}{{"material", &p.Material}, {"color", &p.Color}, {"exploded-color", &p.ExplodedColor}} {
			if v, ok := pa.kw[s.kw]; ok {
				str, err := toString(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("panel %q: %s: %w", panelName, s.kw, err)
				}
				*s.dst = str
			}
		}

		b.warnUnknown("panel "+panelName, pa,
			"width", "depth", "thickness", "at", "holes", "material", "color", "exploded-color")
		return &sexpPanel{panel: p}, nil
	})

	// -----------------------------------------------------------------------
	// (connect 0 1)
	// -----------------------------------------------------------------------
	env.AddFunction("connect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("connect requires exactly 2 panel indices, got %d", len(args))
		}
		a, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("connect: a: %w", err)
		}
		c, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("connect: b: %w", err)
		}
		return &sexpConnection{conn: design.Connection{A: a, B: c}}, nil
	})

	// -----------------------------------------------------------------------
	// (explode :axis :z :distance 5)
	// -----------------------------------------------------------------------
	env.AddFunction("explode", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		spec := design.ExplodeSpec{Axis: defaultExplodeAxis}

		if v, ok := pa.kw["axis"]; ok {
			a, err := toAxis(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("explode: axis: %w", err)
			}
			spec.Axis = a
		} else {
			b.warn("explode", "no :axis given, defaulting to :%s", defaultExplodeAxis)
		}
		if v, ok := pa.kw["distance"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("explode: distance: %w", err)
			}
			spec.Distance = f
		}

		b.warnUnknown("explode", pa, "axis", "distance")
		return &sexpExplode{spec: spec}, nil
	})

	// -----------------------------------------------------------------------
	// (concept "concept-4" :name "..." :subtitle "..."
	//          :panels (list (panel ...) ...)
	//          :connections (list (connect 0 1) ...)
	//          :drawing-explode (explode ...) :viewer-explode (explode ...))
	// -----------------------------------------------------------------------
	env.AddFunction("concept", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("concept requires a key argument")
		}
		key, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("concept: key: %w", err)
		}

		a := &design.Assembly{Key: key, Name: key, DrawingExplode: defaultDrawingExplode}

		if v, ok := pa.kw["name"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("concept %q: name: %w", key, err)
			}
			a.Name = s
		}
		if v, ok := pa.kw["subtitle"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("concept %q: subtitle: %w", key, err)
			}
			a.Subtitle = s
		}
		if v, ok := pa.kw["panels"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("concept %q: panels: %w", key, err)
			}
			for i, item := range items {
				sp, ok := item.(*sexpPanel)
				if !ok {
					return zygo.SexpNull, fmt.Errorf("concept %q: panel %d: expected panel, got %T (%s)",
						key, i, item, item.SexpString(nil))
				}
				p := sp.panel
				p.ID = design.NewPanelID(key, p.Name)
				p.Holes = append([]geom.Point3D(nil), sp.panel.Holes...)
				a.Panels = append(a.Panels, &p)
			}
		}
		if v, ok := pa.kw["connections"]; ok {
			items, err := sexpListToSlice(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("concept %q: connections: %w", key, err)
			}
			for i, item := range items {
				sc, ok := item.(*sexpConnection)
				if !ok {
					return zygo.SexpNull, fmt.Errorf("concept %q: connection %d: expected connect, got %T (%s)",
						key, i, item, item.SexpString(nil))
				}
				a.Connections = append(a.Connections, sc.conn)
			}
		}
		if v, ok := pa.kw["drawing-explode"]; ok {
			spec, err := toExplode(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("concept %q: drawing-explode: %w", key, err)
			}
			a.DrawingExplode = spec
		}
		a.ViewerExplode = a.DrawingExplode
		if v, ok := pa.kw["viewer-explode"]; ok {
			spec, err := toExplode(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("concept %q: viewer-explode: %w", key, err)
			}
			a.ViewerExplode = spec
		}

		b.warnUnknown("concept "+key, pa,
			"name", "subtitle", "panels", "connections", "drawing-explode", "viewer-explode")
		b.catalog.Add(a)
		return &sexpConceptRef{key: key}, nil
	})
}
