package sanity

// Builtin returns a registry populated with every built-in checker. The
// registry is rebuilt deterministically on each call, so callers that want
// process-wide state construct it once at startup. Registration collisions
// among built-ins are programming errors and panic.
func Builtin() *Registry {
	r := NewRegistry()
	for _, group := range [][]Checker{
		structureCheckers(),
		recordCheckers(),
		referenceCheckers(),
		formatCheckers(),
		tier4Checkers(),
	} {
		for _, c := range group {
			if err := r.Register(c); err != nil {
				panic(err)
			}
		}
	}
	return r
}
