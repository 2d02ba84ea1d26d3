// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import (
	"errors"
	"reflect"
	"testing"
)

func TestLocatePrefersFlat(t *testing.T) {
	// both forms exist for 3.2.1
	src, err := Locate("testdata/both", "3.2.1")
	if err != nil {
		t.Fatal(err)
	}
	if src.Format() != "flat" {
		t.Fatalf("got %s, want flat", src.Format())
	}
}

func TestLocateHeaderFallback(t *testing.T) {
	src, err := Locate("testdata/header", "3.2.1")
	if err != nil {
		t.Fatal(err)
	}
	if src.Format() != "header" {
		t.Fatalf("got %s, want header", src.Format())
	}
}

func TestLocateAlias(t *testing.T) {
	// no files for 4.0.1 itself; the alias table maps it to 4_1_0
	src, err := Locate("testdata/alias", "4.0.1")
	if err != nil {
		t.Fatal(err)
	}
	if src.Format() != "header" {
		t.Fatalf("got %s, want header", src.Format())
	}
	db, err := src.Load()
	if err != nil {
		t.Fatal(err)
	}
	if r := db.Register("regHDMI_CONTROL"); r == nil || r.Offset != 0x2000 {
		t.Fatalf("alias source not loaded: %+v", r)
	}
}

func TestLocateNotFound(t *testing.T) {
	_, err := Locate("testdata/incomplete", "9.9.9")
	var notfound *DefsNotFoundError
	if !errors.As(err, &notfound) {
		t.Fatalf("got %v, want DefsNotFoundError", err)
	}
	if notfound.Version != "9.9.9" {
		t.Fatalf("wrong version: %v", notfound)
	}
	if !reflect.DeepEqual(notfound.Available, []string{"3.0.0"}) {
		t.Fatalf("wrong available list: %v", notfound.Available)
	}
}

func TestVersions(t *testing.T) {
	if v := Versions("testdata/header"); !reflect.DeepEqual(v,
		[]string{"3.2.1"}) {
		t.Fatal(v)
	}
	if v := Versions("testdata/flat"); len(v) != 0 {
		// the listing only sees offset headers
		t.Fatal(v)
	}
}

func TestVersionForms(t *testing.T) {
	for _, x := range []struct {
		in, compact, underscored string
	}{
		{"3.2.1", "321", "3_2_1"},
		{"4_1_0", "410", "4_1_0"},
		{"3.1.11", "3111", "3_1_11"},
	} {
		if got := compact(x.in); got != x.compact {
			t.Errorf("compact(%q) = %q, want %q", x.in, got, x.compact)
		}
		if got := underscored(x.in); got != x.underscored {
			t.Errorf("underscored(%q) = %q, want %q",
				x.in, got, x.underscored)
		}
	}
}
