/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/4hrue2kd83f/spectra-lexer/config"
	"github.com/4hrue2kd83f/spectra-lexer/load"
	"github.com/4hrue2kd83f/spectra-lexer/rule"
	"github.com/4hrue2kd83f/spectra-lexer/testutil"
	"github.com/4hrue2kd83f/spectra-lexer/validator"
)

func TestLoad_SingleFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/test")

	result, err := load.Load(t.Context(), []string{"rules.cson"}, load.Options{
		Root: "/test",
		FS:   mfs,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Set.Len() != 10 {
		t.Errorf("expected 10 rules, got %d", result.Set.Len())
	}
	if len(result.Files) != 1 || result.Files[0] != "/test/rules.cson" {
		t.Errorf("unexpected files %v", result.Files)
	}

	cat, ok := result.Set.Get("cat")
	if !ok {
		t.Fatal("expected to find cat")
	}
	if cat.Letters != "cat" {
		t.Errorf("cat.Letters = %q, want %q", cat.Letters, "cat")
	}
	if cat.Alt() != "cat!" {
		t.Errorf("cat.Alt() = %q, want %q", cat.Alt(), "cat!")
	}
	if cat.Caption() != "KAT → cat: the animal" {
		t.Errorf("cat.Caption() = %q", cat.Caption())
	}

	prefix, _ := result.Set.Get("PREFIX")
	if prefix.Letters != "tre" {
		t.Errorf("PREFIX.Letters = %q, want %q", prefix.Letters, "tre")
	}

	cannot, _ := result.Set.Get("cannot")
	if cannot.Letters != "cannot" {
		t.Errorf("cannot.Letters = %q, want %q", cannot.Letters, "cannot")
	}

	empty, _ := result.Set.Get("empty")
	if !empty.Resolved || empty.Letters != "" {
		t.Errorf("empty: resolved=%v letters=%q", empty.Resolved, empty.Letters)
	}
}

func TestLoad_Warnings(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/test")

	result, err := load.Load(t.Context(), []string{"/test/rules.cson"}, load.Options{FS: mfs, Root: "/test"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if !errors.Is(result.Warnings, rule.ErrUnusedReferenceRule) {
		t.Errorf("expected unused REF warning for PREFIX, got %v", result.Warnings)
	}
	if !errors.Is(result.Warnings, rule.ErrKeyCoverage) {
		t.Errorf("expected key coverage warning for cannot, got %v", result.Warnings)
	}
	if result.Warnings.Err() != nil {
		t.Error("warnings must not count as errors")
	}
}

func TestLoad_MultipleFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/split", "/test")

	// The referencing file comes first; references cross files.
	result, err := load.Load(t.Context(), []string{"words.cson", "letters.cson"}, load.Options{
		Root: "/test",
		FS:   mfs,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sass, ok := result.Set.Get("sass")
	if !ok {
		t.Fatal("expected to find sass")
	}
	if sass.Letters != "sass" {
		t.Errorf("sass.Letters = %q", sass.Letters)
	}
	if sass.FilePath != "/test/words.cson" {
		t.Errorf("sass.FilePath = %q", sass.FilePath)
	}
	s, _ := result.Set.Get("s")
	if s.FilePath != "/test/letters.cson" {
		t.Errorf("s.FilePath = %q", s.FilePath)
	}
}

func TestLoad_CrossFileDuplicate(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/split", "/test")
	mfs.AddFile("/test/more.cson", "{\n  \"s\": [\"S\", \"z\"]\n}\n", 0644)

	_, err := load.Load(t.Context(), []string{"letters.cson", "more.cson"}, load.Options{
		Root: "/test",
		FS:   mfs,
	})
	if !errors.Is(err, rule.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	var diags validator.Diagnostics
	if !errors.As(err, &diags) || len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", err)
	}
	d := diags[0]
	if d.FilePath != "/test/more.cson" || d.Line != 2 {
		t.Errorf("diagnostic at %s:%d, want /test/more.cson:2", d.FilePath, d.Line)
	}
	if !strings.Contains(d.Message, "/test/letters.cson:3") {
		t.Errorf("message should name the first definition, got %q", d.Message)
	}
}

func TestLoad_CollectsAcrossFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/split", "/test")
	mfs.AddFile("/test/bad1.cson", "{\"x\": [\"X\", \"x\"]}", 0644)
	mfs.AddFile("/test/bad2.cson", "{\"y\": [\"S\", \"(y\"]}", 0644)

	_, err := load.Load(t.Context(), []string{"bad1.cson", "bad2.cson"}, load.Options{
		Root: "/test",
		FS:   mfs,
	})

	var diags validator.Diagnostics
	if !errors.As(err, &diags) {
		t.Fatalf("expected diagnostics, got %v", err)
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	if !errors.Is(diags[0], rule.ErrMalformedKeySequence) {
		t.Errorf("diags[0] = %v", diags[0])
	}
	if !errors.Is(diags[1], rule.ErrUnterminatedReference) {
		t.Errorf("diags[1] = %v", diags[1])
	}
}

func TestLoad_UnknownTargetAcrossFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/split", "/test")

	// letters.cson is not loaded, so s and -s are missing.
	_, err := load.Load(t.Context(), []string{"words.cson"}, load.Options{
		Root: "/test",
		FS:   mfs,
	})
	if !errors.Is(err, rule.ErrUnknownReferenceTarget) {
		t.Fatalf("expected ErrUnknownReferenceTarget, got %v", err)
	}

	var diags validator.Diagnostics
	if errors.As(err, &diags) && len(diags) != 2 {
		t.Errorf("expected both missing targets reported, got %v", diags)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/test")

	_, err := load.Load(t.Context(), []string{"nonexistent.cson"}, load.Options{
		Root: "/test",
		FS:   mfs,
	})
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}

	var diags validator.Diagnostics
	if errors.As(err, &diags) {
		t.Errorf("I/O failure should not be a diagnostic, got %v", diags)
	}
}

func TestLoad_Cancelled(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/test")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := load.Load(ctx, []string{"rules.cson"}, load.Options{Root: "/test", FS: mfs})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoad_FilesFromConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globbed", "/project")

	result, err := load.Load(t.Context(), nil, load.Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Set.Len() != 2 {
		t.Errorf("expected 2 rules, got %d", result.Set.Len())
	}
	if len(result.Files) != 2 {
		t.Errorf("expected 2 files, got %v", result.Files)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/none", "/project")

	_, err := load.Load(t.Context(), nil, load.Options{Root: "/project", FS: mfs})
	if !errors.Is(err, load.ErrNoFiles) {
		t.Errorf("expected ErrNoFiles, got %v", err)
	}
}

func TestLoad_ConfigOverride(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/test")

	// The alphabet lacks 'H', which "sh" uses.
	_, err := load.Load(t.Context(), []string{"rules.cson"}, load.Options{
		Root:   "/test",
		FS:     mfs,
		Config: &config.Config{KeyAlphabet: "STKPWRAO*EUFRPBLGTSDZ"},
	})
	if !errors.Is(err, rule.ErrMalformedKeySequence) {
		t.Errorf("expected ErrMalformedKeySequence from config alphabet, got %v", err)
	}
}

func TestLoad_ParallelMatchesSequential(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/basic", "/test")

	seq, err := load.Load(t.Context(), []string{"rules.cson"}, load.Options{Root: "/test", FS: mfs})
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	par, err := load.Load(t.Context(), []string{"rules.cson"}, load.Options{Root: "/test", FS: mfs, Parallel: true})
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if seq.Set.Len() != par.Set.Len() {
		t.Fatalf("sizes differ: %d vs %d", seq.Set.Len(), par.Set.Len())
	}
	for id, a := range seq.Set.All() {
		b, ok := par.Set.Get(id)
		if !ok {
			t.Errorf("parallel set lacks %q", id)
			continue
		}
		if a.Letters != b.Letters || a.Flags != b.Flags || a.Info != b.Info || a.Line != b.Line {
			t.Errorf("rule %q differs: %+v vs %+v", id, a, b)
		}
	}
}

func TestParse(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "fixtures/basic/rules.cson")

	result, err := load.Parse(data, load.Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if result.Set.Len() != 10 {
		t.Errorf("expected 10 rules, got %d", result.Set.Len())
	}
	if len(result.Files) != 0 {
		t.Errorf("expected no files, got %v", result.Files)
	}
}

func TestParse_Cycle(t *testing.T) {
	_, err := load.Parse([]byte(`{"a": ["A", "(b)"], "b": ["B", "(a)"]}`), load.Options{})
	if !errors.Is(err, rule.ErrCyclicReference) {
		t.Errorf("expected ErrCyclicReference, got %v", err)
	}
}
