package resolver

import (
	stderrors "errors"
	"fmt"
	"testing"

	"quill/internal/errors"
	"quill/internal/object"
)

// recordingResolver counts calls and delegates to a fixed outcome
type recordingResolver struct {
	calls int
	mod   *object.Module
	err   error
}

func (r *recordingResolver) Resolve(_ Context, path string, pos errors.SourceLocation) (*object.Module, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.mod, nil
}

func TestChainFirstSuccessWins(t *testing.T) {
	first := &recordingResolver{mod: object.NewModule()}
	second := &recordingResolver{mod: object.NewModule()}
	chain := NewResolverChain(first, second)

	mod, err := chain.Resolve(nil, "m", errors.SourceLocation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod != first.mod {
		t.Error("expected first resolver's module")
	}
	if second.calls != 0 {
		t.Error("second resolver consulted despite earlier success")
	}
}

func TestChainFallsThroughOnNotFound(t *testing.T) {
	first := &recordingResolver{err: errors.NewModuleNotFound("m", errors.SourceLocation{})}
	second := &recordingResolver{mod: object.NewModule()}
	chain := NewResolverChain(first, second)

	mod, err := chain.Resolve(nil, "m", errors.SourceLocation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod != second.mod {
		t.Error("expected second resolver's module after fall-through")
	}
}

func TestChainStopsOnOtherErrors(t *testing.T) {
	broken := &recordingResolver{err: fmt.Errorf("compile failed")}
	fallback := &recordingResolver{mod: object.NewModule()}
	chain := NewResolverChain(broken, fallback)

	_, err := chain.Resolve(nil, "m", errors.SourceLocation{})
	if err == nil || err.Error() != "compile failed" {
		t.Fatalf("expected compile failure to surface, got %v", err)
	}
	if fallback.calls != 0 {
		t.Error("chain kept walking past a non-not-found failure")
	}
}

func TestChainAllMiss(t *testing.T) {
	pos := errors.SourceLocation{File: "a.ql", Line: 3, Column: 1}
	chain := NewResolverChain(
		&recordingResolver{err: errors.NewModuleNotFound("m", pos)},
		&recordingResolver{err: errors.NewModuleNotFound("m", pos)},
	)
	chain.Push(NewStaticResolver())

	if chain.Len() != 3 {
		t.Fatalf("expected chain of 3, got %d", chain.Len())
	}

	_, err := chain.Resolve(nil, "m", pos)
	var notFound *errors.ModuleNotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected ModuleNotFoundError, got %v", err)
	}
	if notFound.Path != "m" || notFound.Position != pos {
		t.Errorf("unexpected error payload: path=%q pos=%v", notFound.Path, notFound.Position)
	}
}

func TestEmptyChain(t *testing.T) {
	chain := NewResolverChain()
	_, err := chain.Resolve(nil, "anything", errors.SourceLocation{})
	var notFound *errors.ModuleNotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected ModuleNotFoundError from empty chain, got %v", err)
	}
}
