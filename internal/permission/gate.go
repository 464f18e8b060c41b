// Package permission implements the allow-list gate consulted before any
// class is annotated. Absence of permission is a negative boolean result,
// never an error.
package permission

// Gate holds the module- and class-level allow lists. It is constructed
// explicitly from configuration and injected into the orchestrator; there
// is no process-wide state.
type Gate struct {
	modules map[string]struct{}
	classes map[string]struct{}
}

// NewGate creates a Gate from explicit allow lists.
//
// Modules must be allow-listed to be touched at all: an empty module list
// denies everything. An empty class list allows every class of an allowed
// module; a non-empty list restricts annotation to the named classes.
func NewGate(modules, classes []string) *Gate {
	g := &Gate{
		modules: make(map[string]struct{}, len(modules)),
		classes: make(map[string]struct{}, len(classes)),
	}
	for _, m := range modules {
		g.modules[m] = struct{}{}
	}
	for _, c := range classes {
		g.classes[c] = struct{}{}
	}
	return g
}

// ModuleAllowed reports whether the module is allow-listed.
func (g *Gate) ModuleAllowed(module string) bool {
	_, ok := g.modules[module]
	return ok
}

// ClassAllowed reports whether the class may be annotated. When no class
// allow list is configured, every class is allowed.
func (g *Gate) ClassAllowed(class string) bool {
	if len(g.classes) == 0 {
		return true
	}
	_, ok := g.classes[class]
	return ok
}
