package sentiment

import "fmt"

// Registry holds the long-lived analyzer instances keyed by method. Built
// once in main, read-only afterwards.
type Registry struct {
	analyzers map[Method]Analyzer
	def       Method
}

func NewRegistry(def Method, analyzers ...Analyzer) (*Registry, error) {
	byMethod := make(map[Method]Analyzer, len(analyzers))
	for _, a := range analyzers {
		if _, dup := byMethod[a.Method()]; dup {
			return nil, fmt.Errorf("duplicate analyzer for method %s", a.Method())
		}
		byMethod[a.Method()] = a
	}
	if _, ok := byMethod[def]; !ok {
		return nil, fmt.Errorf("default method %s has no analyzer", def)
	}
	return &Registry{analyzers: byMethod, def: def}, nil
}

func (r *Registry) Get(m Method) (Analyzer, bool) {
	a, ok := r.analyzers[m]
	return a, ok
}

func (r *Registry) Default() Method {
	return r.def
}

func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.analyzers))
	for _, m := range AllMethods() {
		if _, ok := r.analyzers[m]; ok {
			names = append(names, string(m))
		}
	}
	return names
}
