package codegen_test

import (
	"testing"

	"unikit/internal/codegen"
	"unikit/internal/token"
)

func TestIDGenSequence(t *testing.T) {
	var g codegen.IDGen
	var got []string
	for range 53 {
		got = append(got, g.Next())
	}
	checks := map[int]string{0: "a", 25: "z", 26: "A", 51: "Z", 52: "aa"}
	for i, want := range checks {
		if got[i] != want {
			t.Errorf("id #%d = %q, want %q", i, got[i], want)
		}
	}
}

func TestIDGenUniqueAndNotReserved(t *testing.T) {
	var g codegen.IDGen
	seen := make(map[string]struct{}, 5000)
	for i := range 5000 {
		id := g.Next()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q at step %d", id, i)
		}
		if token.IsReserved(id) {
			t.Fatalf("reserved word %q generated", id)
		}
		seen[id] = struct{}{}
	}
	for _, word := range []string{"do", "if", "in"} {
		if _, ok := seen[word]; ok {
			t.Errorf("reserved word %q was handed out", word)
		}
	}
}

func TestVIfScopesShareParentIDs(t *testing.T) {
	f := newFixture()
	root := codegen.NewRootScope()
	chain := codegen.NewVIfChain(f.ctx, f.b, root)

	seen := map[string]bool{}
	for range 1000 {
		scope := chain.If(exprAt("ok", 1, 1))
		key := scope.Bind(f.b, f.parse(t, "x"))
		if seen[key] {
			t.Fatalf("key %q repeated", key)
		}
		seen[key] = true
	}
}
