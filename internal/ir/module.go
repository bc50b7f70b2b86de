package ir

// Module is an ordered collection of lowered functions. Duplicate-name
// creation is prevented upstream by semantic analysis, so GetFunction
// only ever needs a linear scan for a single match.
type Module struct {
	Funcs []*Func
}

// GetFunction returns the function named name, or nil if absent.
func (m *Module) GetFunction(name string) *Func {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}
