package terminal

import (
	"github.com/nst-sdc/themekit/constant"
	"github.com/samber/mo"
)

// VariableSource reads the current effective value of a named style variable.
// ok is false when the variable is unset.
type VariableSource interface {
	Variable(name string) (value string, ok bool)
}

// SourceFunc adapts a plain function to VariableSource.
type SourceFunc func(name string) (string, bool)

func (f SourceFunc) Variable(name string) (string, bool) {
	return f(name)
}

// MapSource is a fixed set of variables.
type MapSource map[string]string

func (m MapSource) Variable(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Resolver builds a Theme from a VariableSource.
// It holds no state besides its configuration, so Resolve may be called concurrently.
type Resolver struct {
	src       VariableSource
	namespace string
}

type ResolverOption func(*Resolver)

// WithNamespace sets the variable namespace, constant.Namespace by default.
func WithNamespace(namespace string) ResolverOption {
	return func(r *Resolver) {
		r.namespace = namespace
	}
}

func NewResolver(src VariableSource, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		src:       src,
		namespace: constant.Namespace,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve reads every role from the source.
// Missing or empty variables leave the role unset.
func (r *Resolver) Resolve() Theme {
	var theme Theme
	if r.src == nil {
		return theme
	}

	for _, role := range Roles {
		*role.field(&theme) = r.lookup(role)
	}

	return theme
}

func (r *Resolver) lookup(role Role) mo.Option[string] {
	value, ok := r.src.Variable(role.Variable(r.namespace))
	if !ok || value == "" {
		return mo.None[string]()
	}

	return mo.Some(value)
}
