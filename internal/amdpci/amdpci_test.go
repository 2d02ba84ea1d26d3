// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package amdpci

import (
	"strings"
	"testing"
)

const resource = `0x00000000d0000000 0x00000000dfffffff 0x000000000014220c
0x0000000000000000 0x0000000000000000 0x0000000000000000
0x00000000e0000000 0x00000000e01fffff 0x000000000014220c
0x0000000000000000 0x0000000000000000 0x0000000000000000
0x0000000000003000 0x00000000000030ff 0x0000000000040101
0x00000000fca00000 0x00000000fca7ffff 0x0000000000040200
0x00000000fcb00000 0x00000000fcb7ffff 0x0000000000046200
`

func TestParseResource(t *testing.T) {
	base, size, err := ParseResource(strings.NewReader(resource), 5)
	if err != nil {
		t.Fatal(err)
	}
	if base != 0xfca00000 {
		t.Fatalf("base %#x", base)
	}
	if size != 0x80000 {
		t.Fatalf("size %#x", size)
	}
}

func TestParseResourceUnassigned(t *testing.T) {
	if _, _, err := ParseResource(strings.NewReader(resource), 1); err == nil {
		t.Fatal("unassigned region accepted")
	}
}

func TestParseResourceMissing(t *testing.T) {
	if _, _, err := ParseResource(strings.NewReader(resource), 9); err == nil {
		t.Fatal("missing region accepted")
	}
}
