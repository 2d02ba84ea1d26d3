// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import "testing"

func TestResolvePrefix(t *testing.T) {
	db := NewDB()
	db.SetOffset("regHDMI_CONTROL", 1)
	db.ResolvePrefix()
	if db.Prefix() != "reg" {
		t.Fatalf("got %q, want reg", db.Prefix())
	}

	db = NewDB()
	db.SetOffset("mmHDMI_CONTROL", 1)
	db.ResolvePrefix()
	if db.Prefix() != "mm" {
		t.Fatalf("got %q, want mm", db.Prefix())
	}

	// empty database defaults to the older convention
	db = NewDB()
	db.ResolvePrefix()
	if db.Prefix() != "mm" {
		t.Fatalf("got %q, want mm", db.Prefix())
	}
}

func TestStripPrefix(t *testing.T) {
	for _, x := range []struct{ in, want string }{
		{"regHDMI_CONTROL", "HDMI_CONTROL"},
		{"mmHDMI_CONTROL", "HDMI_CONTROL"},
		{"reg0TEST", "0TEST"},
		{"HDMI_CONTROL", "HDMI_CONTROL"},
		{"regional", "regional"}, // lower case after "reg" is no prefix
		{"mm", "mm"},
		{"reg", "reg"},
	} {
		if got := StripPrefix(x.in); got != x.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", x.in, got, x.want)
		}
	}
}

func TestMatch(t *testing.T) {
	db := load(t, "testdata/flat", "3.2.1")

	names, err := db.Match("HDMI[0-9]*_")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "regHDMI_CONTROL" {
		t.Fatalf("got %v", names)
	}

	// anchored at the start: OTG pattern must not match DPPCLK_CTRL
	names, err = db.Match("OTG[0-9]+_")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "regOTG0_OTG_CONTROL" {
		t.Fatalf("got %v", names)
	}

	names, err = db.Match("MPC_")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Fatalf("got %v, want none", names)
	}
}
