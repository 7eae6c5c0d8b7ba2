package resolver

import (
	stderrors "errors"

	"quill/internal/errors"
	"quill/internal/object"
)

// ResolverChain tries a list of resolvers in order and returns the
// first successful resolution. A path is reported missing only when
// every resolver in the chain misses; any other failure stops the walk
// immediately.
type ResolverChain struct {
	resolvers []ModuleResolver
}

// NewResolverChain creates a chain over the given resolvers
func NewResolverChain(resolvers ...ModuleResolver) *ResolverChain {
	return &ResolverChain{resolvers: resolvers}
}

// Push appends a resolver to the end of the chain
func (c *ResolverChain) Push(r ModuleResolver) {
	c.resolvers = append(c.resolvers, r)
}

// Len returns the number of chained resolvers
func (c *ResolverChain) Len() int {
	return len(c.resolvers)
}

// Resolve walks the chain in order
func (c *ResolverChain) Resolve(ctx Context, path string, pos errors.SourceLocation) (*object.Module, error) {
	for _, r := range c.resolvers {
		mod, err := r.Resolve(ctx, path, pos)
		if err == nil {
			return mod, nil
		}
		var notFound *errors.ModuleNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, err
		}
	}
	return nil, errors.NewModuleNotFound(path, pos)
}
