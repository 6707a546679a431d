package migrate

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBuildPlanDestinations(t *testing.T) {
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": testMcmeta,
		"data/example/functions/greet.mcfunction":      "say hello",
		"data/example/functions/sub/nested.mcfunction": "say nested",
		"data/example/tags/functions/a.json":           `{"values":["example:greet"]}`,
		"data/example/tags/functions/b.json":           `{"values":["example:greet"]}`,
		"data/other/tags/functions/c.json":             `{"values":["example:greet"]}`,
	})
	inv, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	plan, err := BuildPlan(inv, Options{})
	if err != nil {
		t.Fatalf("BuildPlan() = %v", err)
	}

	var dests []string
	for _, e := range plan.Entries {
		dests = append(dests, e.Destination)
	}
	want := []string{
		"src/example/greet.shu",
		"src/example/sub/nested.shu",
		"src/example/tags.shu",
		"src/other/tags.shu",
	}
	if !reflect.DeepEqual(dests, want) {
		t.Errorf("destinations = %v, want %v", dests, want)
	}

	// Both example tag units must live in the single merged entry.
	for _, e := range plan.Entries {
		if e.Destination == "src/example/tags.shu" && len(e.Units) != 2 {
			t.Errorf("merged tag entry has %d units, want 2", len(e.Units))
		}
	}

	if !reflect.DeepEqual(plan.Manifest.Namespaces, []string{"example", "other"}) {
		t.Errorf("namespaces = %v", plan.Manifest.Namespaces)
	}
}

func TestBuildPlanIdempotent(t *testing.T) {
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": testMcmeta,
		"data/a/functions/x.mcfunction":  "say x",
		"data/a/tags/functions/t.json":   `{"values":["a:x"]}`,
		"data/b/functions/y.mcfunction":  "say y",
	})

	build := func() *Plan {
		inv, err := Scan(root)
		if err != nil {
			t.Fatal(err)
		}
		plan, err := BuildPlan(inv, Options{Name: "fixed"})
		if err != nil {
			t.Fatal(err)
		}
		return plan
	}

	if !reflect.DeepEqual(build(), build()) {
		t.Error("two plans over an unchanged tree differ")
	}
}

func TestBuildPlanManifestSeeding(t *testing.T) {
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": `{"pack":{"description":"from mcmeta","pack_format":18}}`,
		"data/ex/functions/f.mcfunction": "say hi",
	})
	inv, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("discovered values", func(t *testing.T) {
		plan, err := BuildPlan(inv, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if plan.Manifest.Pack.Description != "from mcmeta" {
			t.Errorf("description = %q", plan.Manifest.Pack.Description)
		}
		if plan.Manifest.Pack.PackFormat != 18 {
			t.Errorf("pack format = %d, want 18", plan.Manifest.Pack.PackFormat)
		}
	})

	t.Run("cli overrides win", func(t *testing.T) {
		plan, err := BuildPlan(inv, Options{Name: "my-project", Description: "from cli"})
		if err != nil {
			t.Fatal(err)
		}
		if plan.Manifest.Pack.Name != "my-project" {
			t.Errorf("name = %q, want my-project", plan.Manifest.Pack.Name)
		}
		if plan.Manifest.Pack.Description != "from cli" {
			t.Errorf("description = %q, want from cli", plan.Manifest.Pack.Description)
		}
	})
}

func TestBuildPlanSanitizesNamespaces(t *testing.T) {
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": testMcmeta,
		"data/my-ns/functions/f.mcfunction": "say hi",
	})
	inv, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	plan, err := BuildPlan(inv, Options{})
	if err != nil {
		t.Fatalf("BuildPlan() = %v", err)
	}
	if plan.Entries[0].Destination != "src/my_ns/f.shu" {
		t.Errorf("destination = %q, want src/my_ns/f.shu", plan.Entries[0].Destination)
	}
	if len(plan.Warnings) != 1 || !strings.Contains(plan.Warnings[0].Message, "my_ns") {
		t.Errorf("warnings = %v, want sanitized namespace warning", plan.Warnings)
	}
}

func TestBuildPlanCollision(t *testing.T) {
	// Two namespaces sanitize to the same identifier, so their files
	// collide at the same destination.
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": testMcmeta,
		"data/my-ns/functions/f.mcfunction": "say a",
		"data/my.ns/functions/f.mcfunction": "say b",
	})
	inv, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	_, err = BuildPlan(inv, Options{})
	var planErr *PlanningError
	if !errors.As(err, &planErr) {
		t.Fatalf("BuildPlan() = %v, want PlanningError", err)
	}
	if planErr.Destination != "src/my_ns/f.shu" {
		t.Errorf("collision destination = %q", planErr.Destination)
	}
}

func TestBuildPlanTagFunctionCollision(t *testing.T) {
	// A function named tags.mcfunction collides with the merged tag file.
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": testMcmeta,
		"data/ex/functions/tags.mcfunction": "say clash",
		"data/ex/tags/functions/grp.json":   `{"values":["ex:x"]}`,
	})
	inv, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}

	_, err = BuildPlan(inv, Options{})
	var planErr *PlanningError
	if !errors.As(err, &planErr) {
		t.Fatalf("BuildPlan() = %v, want PlanningError", err)
	}
}

func TestBuildPlanTotality(t *testing.T) {
	root := writeLegacyTree(t, map[string]string{
		"pack.mcmeta": testMcmeta,
		"data/a/functions/one.mcfunction": "say one",
		"data/a/tags/functions/t.json":    `{"values":["a:one"]}`,
		"data/b/functions/two.mcfunction": "say two",
	})
	inv, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	plan, err := BuildPlan(inv, Options{})
	if err != nil {
		t.Fatal(err)
	}

	planned := make(map[string]int)
	for _, e := range plan.Entries {
		for _, u := range e.Units {
			planned[u.ID()]++
		}
	}
	for _, u := range inv.Units {
		if u.Kind == KindManifest {
			if planned[u.ID()] != 0 {
				t.Errorf("manifest unit appears in plan entries")
			}
			continue
		}
		if planned[u.ID()] != 1 {
			t.Errorf("unit %s appears in %d entries, want exactly 1", u.ID(), planned[u.ID()])
		}
	}
}
