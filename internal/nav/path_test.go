package nav

import "testing"

func TestPathToScenario(t *testing.T) {
	tree := buildScenario(t)

	path := tree.PathTo("s1")
	got := ids(path)
	want := []string{RootID, "dev", "web", "s1"}
	if len(got) != len(want) {
		t.Fatalf("expected path %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected path %v, got %v", want, got)
		}
	}

	// Each consecutive pair is a direct parent/child relation.
	for i := 0; i < len(path)-1; i++ {
		found := false
		for _, c := range path[i].Children {
			if c == path[i+1] {
				found = true
			}
		}
		if !found {
			t.Errorf("%s is not a child of %s", path[i+1].ID, path[i].ID)
		}
	}
}

func TestPathToRoot(t *testing.T) {
	tree := buildScenario(t)
	path := tree.PathTo(RootID)
	if len(path) != 1 || path[0] != tree.Root {
		t.Errorf("expected [root], got %v", ids(path))
	}
}

func TestPathToUnknown(t *testing.T) {
	tree := buildScenario(t)
	if path := tree.PathTo("nope"); path != nil {
		t.Errorf("expected nil for unknown id, got %v", ids(path))
	}
}

func TestPathToEmptyID(t *testing.T) {
	tree := buildScenario(t)
	if path := tree.PathTo(""); path != nil {
		t.Errorf("expected nil for empty id, got %v", ids(path))
	}
}

// TestPathToSurvivesCycle corrupts a tree by hand and checks the resolver
// still terminates thanks to its visited set.
func TestPathToSurvivesCycle(t *testing.T) {
	a := &Node{ID: "a", Name: "A", Kind: KindFolder}
	b := &Node{ID: "b", Name: "B", Kind: KindFolder}
	a.Children = []*Node{b}
	b.Children = []*Node{a}
	root := &Node{ID: RootID, Name: RootName, Kind: KindFolder, Children: []*Node{a}}
	tree := &Tree{Root: root, Index: map[string]*Node{RootID: root, "a": a, "b": b}}

	path := tree.PathTo("b")
	if got := ids(path); len(got) != 3 || got[2] != "b" {
		t.Errorf("expected root>a>b despite the cycle, got %v", got)
	}
	if path := tree.PathTo("missing"); path != nil {
		t.Errorf("expected termination with nil on a cyclic tree, got %v", ids(path))
	}
}
