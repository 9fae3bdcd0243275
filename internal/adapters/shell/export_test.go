package shell

var ResolveEnvironment = resolveEnvironment

// WithEnviron replaces the inherited environment source.
func (r *Runner) WithEnviron(environ func() []string) *Runner {
	r.environ = environ
	return r
}
