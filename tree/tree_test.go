package tree_test

import (
	"reflect"
	"testing"

	"github.com/materials-io/emeta/tree"
)

func sample() tree.Tree {
	return tree.Tree{
		"a": map[string]any{
			"b": map[string]any{"c": 42},
			"seq": []any{
				map[string]any{"name": "first"},
				"second",
			},
		},
		"scalar": "leaf",
	}
}

func TestGet_NestedKey(t *testing.T) {
	v, ok := tree.Get(sample(), tree.Path{"a", "b", "c"})
	if !ok {
		t.Fatalf("expected path to resolve")
	}
	if v != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
}

func TestGet_SequenceIndex(t *testing.T) {
	v, ok := tree.Get(sample(), tree.Path{"a", "seq", "0", "name"})
	if !ok || v != "first" {
		t.Fatalf("expected first, got %v (ok=%v)", v, ok)
	}
	if _, ok := tree.Get(sample(), tree.Path{"a", "seq", "5"}); ok {
		t.Fatalf("out-of-range index must not resolve")
	}
	if _, ok := tree.Get(sample(), tree.Path{"a", "seq", "x"}); ok {
		t.Fatalf("non-numeric index must not resolve")
	}
}

func TestGet_MissesNeverPanic(t *testing.T) {
	for _, path := range []tree.Path{
		{"missing"},
		{"a", "missing"},
		{"scalar", "below-a-leaf"},
		{"a", "b", "c", "below-a-scalar"},
	} {
		if v, ok := tree.Get(sample(), path); ok {
			t.Fatalf("path %v should miss, got %v", path, v)
		}
	}
}

func TestGet_EmptyPathReturnsRoot(t *testing.T) {
	s := sample()
	v, ok := tree.Get(s, nil)
	if !ok {
		t.Fatalf("empty path should resolve to the root")
	}
	if !reflect.DeepEqual(v, any(s)) {
		t.Fatalf("expected the root tree back")
	}
}

func TestGetTree(t *testing.T) {
	sub, ok := tree.GetTree(sample(), tree.Key("a"))
	if !ok || sub == nil {
		t.Fatalf("expected subtree at a")
	}
	if _, ok := tree.GetTree(sample(), tree.Key("scalar")); ok {
		t.Fatalf("scalar leaf must not come back as a subtree")
	}
}

func TestSet_CreatesIntermediates(t *testing.T) {
	dst := tree.Tree{}
	if !tree.Set(dst, tree.Path{"x", "y", "z"}, 1.5, "", false) {
		t.Fatalf("expected write to happen")
	}
	v, ok := tree.Get(dst, tree.Path{"x", "y", "z"})
	if !ok || v != 1.5 {
		t.Fatalf("expected 1.5 at x/y/z, got %v", v)
	}
}

func TestSet_UnitWrapsLeaf(t *testing.T) {
	dst := tree.Tree{}
	tree.Set(dst, tree.Key("energy"), 0.0, "KiloEV", false)
	want := map[string]any{"value": 0.0, "unit": "KiloEV"}
	if !reflect.DeepEqual(dst["energy"], want) {
		t.Fatalf("expected unit leaf %v, got %v", want, dst["energy"])
	}
}

func TestSet_FirstWriterWins(t *testing.T) {
	dst := tree.Tree{}
	tree.Set(dst, tree.Key("k"), "first", "", false)
	if tree.Set(dst, tree.Key("k"), "second", "", false) {
		t.Fatalf("non-override write over a populated leaf must be refused")
	}
	if dst["k"] != "first" {
		t.Fatalf("expected first to be retained, got %v", dst["k"])
	}
}

func TestSet_OverrideReplaces(t *testing.T) {
	dst := tree.Tree{}
	tree.Set(dst, tree.Key("k"), "first", "", false)
	if !tree.Set(dst, tree.Key("k"), "second", "", true) {
		t.Fatalf("override write must happen")
	}
	if dst["k"] != "second" {
		t.Fatalf("expected second after override, got %v", dst["k"])
	}
}

func TestSet_EmptyLeafIsOverwritable(t *testing.T) {
	dst := tree.Tree{"k": map[string]any{}}
	if !tree.Set(dst, tree.Key("k"), "v", "", false) {
		t.Fatalf("an empty leaf holds no information and may be replaced")
	}
}

func TestEmpty(t *testing.T) {
	for _, v := range []any{nil, map[string]any{}, []any{}} {
		if !tree.Empty(v) {
			t.Fatalf("%#v should be empty", v)
		}
	}
	for _, v := range []any{0, 0.0, "", false, map[string]any{"k": 1}, []any{1}} {
		if tree.Empty(v) {
			t.Fatalf("%#v should not be empty", v)
		}
	}
}
