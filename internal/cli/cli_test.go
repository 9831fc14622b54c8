package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func mustJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, s)
	}
	return v
}

func TestTasksList(t *testing.T) {
	out, _, err := runCmd(t, "tasks", "list")
	if err != nil {
		t.Fatal(err)
	}
	v := mustJSON(t, out)
	tasks, ok := v["tasks"].([]any)
	if !ok || len(tasks) != 6 {
		t.Fatalf("tasks = %v", v["tasks"])
	}
	if v["completed"].(float64) != 0 {
		t.Errorf("completed = %v, want 0", v["completed"])
	}
}

func TestTasksAddValidation(t *testing.T) {
	_, errOut, err := runCmd(t, "tasks", "add", "--title", "   ")
	if err == nil {
		t.Fatal("blank title should fail")
	}
	if got := strings.Count(errOut, "Please enter a task title"); got != 1 {
		t.Errorf("message printed %d times, want once\nstderr = %q", got, errOut)
	}
}

func TestTasksDone(t *testing.T) {
	out, _, err := runCmd(t, "tasks", "done", "3")
	if err != nil {
		t.Fatal(err)
	}
	v := mustJSON(t, out)
	if v["completed"].(float64) != 1 {
		t.Errorf("completed = %v, want 1", v["completed"])
	}

	if _, _, err := runCmd(t, "tasks", "done", "nope"); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestExploreSearch(t *testing.T) {
	out, _, err := runCmd(t, "explore", "search", "habit")
	if err != nil {
		t.Fatal(err)
	}
	v := mustJSON(t, out)
	results := v["results"].([]any)
	found := false
	for _, r := range results {
		if r.(map[string]any)["id"] == "13" {
			found = true
		}
	}
	if !found {
		t.Errorf("results = %v, want a hit with id 13", results)
	}
}

func TestExploreBooksUnknownCategory(t *testing.T) {
	_, errOut, err := runCmd(t, "explore", "books", "--category", "cooking")
	if err == nil {
		t.Fatal("unknown category should fail")
	}
	if !strings.Contains(errOut, "category not found: cooking") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestLibraryCollections(t *testing.T) {
	out, _, err := runCmd(t, "library", "collections")
	if err != nil {
		t.Fatal(err)
	}
	v := mustJSON(t, out)
	if cols := v["collections"].([]any); len(cols) != 3 {
		t.Errorf("collections = %d, want 3", len(cols))
	}
}

func TestThemeSetPersists(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCmd(t, "--dir", dir, "theme", "set", "dark")
	if err != nil {
		t.Fatal(err)
	}
	v := mustJSON(t, out)
	if v["mode"] != "dark" || v["scheme"] != "dark" {
		t.Errorf("set output = %v", v)
	}

	// A fresh invocation reads the persisted preference back.
	out, _, err = runCmd(t, "--dir", dir, "theme", "show")
	if err != nil {
		t.Fatal(err)
	}
	v = mustJSON(t, out)
	if v["mode"] != "dark" {
		t.Errorf("show after set = %v, want dark", v)
	}

	if _, _, err := runCmd(t, "--dir", dir, "theme", "set", "solarized"); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestOnboardingStatusAndReset(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCmd(t, "--dir", dir, "onboarding", "status")
	if err != nil {
		t.Fatal(err)
	}
	v := mustJSON(t, out)
	if v["completed"] != false {
		t.Errorf("fresh status = %v, want incomplete", v)
	}

	if _, _, err := runCmd(t, "--dir", dir, "onboarding", "reset"); err != nil {
		t.Fatal(err)
	}
}
