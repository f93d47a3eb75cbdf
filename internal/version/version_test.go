/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"strings"
	"testing"
)

func TestGet_LdflagsVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want v1.2.3", got)
	}
	if !strings.HasPrefix(Full(), "v1.2.3") {
		t.Errorf("Full() = %q", Full())
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	for _, key := range []string{"version", "gitCommit", "buildTime", "goVersion"} {
		if _, ok := info[key]; !ok {
			t.Errorf("Info() lacks %q", key)
		}
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Errorf("shortCommit = %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit = %q", got)
	}
}
