package workout

import "testing"

func TestStandardExercisesAreFlagged(t *testing.T) {
	list := StandardExercises()
	if len(list) == 0 {
		t.Fatalf("expected a non-empty catalog")
	}
	for _, ex := range list {
		if !ex.IsStandard {
			t.Fatalf("expected %q to be standard", ex.Name)
		}
	}

	list[0].Name = "changed"
	if StandardExercises()[0].Name == "changed" {
		t.Fatalf("catalog must not be mutated through the returned slice")
	}
}

func TestMergeExercisesDedupesByName(t *testing.T) {
	standard := []LibraryExercise{
		{ID: "std-1", Name: "Supino Reto", IsStandard: true},
		{ID: "std-2", Name: "Prancha", IsStandard: true},
	}
	custom := []LibraryExercise{
		{ID: "c1", Name: "  supino reto ", IsStandard: true},
		{ID: "c2", Name: "Burpee"},
		{ID: "c3", Name: "BURPEE"},
		{ID: "c4", Name: ""},
	}

	got := MergeExercises(standard, custom)

	if len(got) != 3 {
		t.Fatalf("expected 3 exercises, got %d: %+v", len(got), got)
	}
	if got[0].ID != "std-1" || got[1].ID != "std-2" {
		t.Fatalf("built-in entries must come first: %+v", got)
	}
	if got[2].ID != "c2" || got[2].IsStandard {
		t.Fatalf("expected custom Burpee flagged as non-standard, got %+v", got[2])
	}
}

func TestGroupByFolderKeepsDanglingTemplatesUngrouped(t *testing.T) {
	folders := []WorkoutFolder{{ID: "f1", Name: "Hipertrofia"}}
	templates := []WorkoutTemplate{
		{ID: "t1", FolderID: "f1"},
		{ID: "t2", FolderID: "deleted"},
		{ID: "t3"},
	}

	groups := GroupByFolder(folders, templates)

	if len(groups["f1"]) != 1 || groups["f1"][0].ID != "t1" {
		t.Fatalf("unexpected f1 group: %+v", groups["f1"])
	}
	if len(groups[""]) != 2 {
		t.Fatalf("expected 2 ungrouped templates, got %+v", groups[""])
	}
	if _, ok := groups["deleted"]; ok {
		t.Fatalf("dangling folder id must not create a group")
	}
}
