// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import (
	"reflect"
	"testing"
)

func TestFields(t *testing.T) {
	db := load(t, "testdata/flat", "3.2.1")

	fields := db.Fields("regHDMI_CONTROL", 0x00000037)
	want := []Field{
		{"HDMI_ENABLE", 1},
		{"KEEPOUT_MODE", 1},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
}

func TestFieldsSkipIncomplete(t *testing.T) {
	db := load(t, "testdata/flat", "3.2.1")

	// OTG_START_POINT_CNTL has a mask but no shift declared
	fields := db.Fields("regOTG0_OTG_CONTROL", 0xffffffff)
	want := []Field{
		{"OTG_MASTER_EN", 1},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
}

func TestFieldsDeterministic(t *testing.T) {
	db := load(t, "testdata/flat", "3.2.1")
	a := db.Fields("regHDMI_CONTROL", 0x37)
	b := db.Fields("regHDMI_CONTROL", 0x37)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

func TestFieldsUnsigned(t *testing.T) {
	db := NewDB()
	db.SetMask("CTL__SIGN", 0x80000000)
	db.SetShift("CTL__SIGN", 31)
	db.SetMask("CTL__ALL", 0xffffffff)
	db.SetShift("CTL__ALL", 0)

	fields := db.Fields("regCTL", 0xffffffff)
	want := []Field{
		{"SIGN", 1},
		{"ALL", 0xffffffff},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
}

func TestFieldsDeclarationOrder(t *testing.T) {
	db := NewDB()
	// deliberately not alphabetical
	db.SetMask("CTL__ZULU", 0x2)
	db.SetShift("CTL__ZULU", 1)
	db.SetMask("CTL__ALPHA", 0x1)
	db.SetShift("CTL__ALPHA", 0)

	fields := db.Fields("regCTL", 0x3)
	want := []Field{
		{"ZULU", 1},
		{"ALPHA", 1},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
}
