/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture loading for rule tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/4hrue2kd83f/spectra-lexer/internal/mapfs"
)

// fixturePath finds a path under testdata relative to the package being tested.
// Go test runs in the package directory, so the repo's testdata may be a level or two up.
func fixturePath(t *testing.T, rel string) string {
	t.Helper()
	for _, dir := range []string{"testdata", filepath.Join("..", "testdata"), filepath.Join("..", "..", "testdata")} {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	t.Fatalf("fixture %s not found under testdata", rel)
	return ""
}

// NewFixtureFS loads a fixture directory into a MapFileSystem
// with its files mapped under rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	dir := fixturePath(t, fixtureDir)
	mfs := mapfs.New()

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixture string) []byte {
	t.Helper()

	content, err := os.ReadFile(fixturePath(t, fixture))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", fixture, err)
	}
	return content
}
