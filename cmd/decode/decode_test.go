// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package decode

import "testing"

func TestMissingArgs(t *testing.T) {
	c := Command{}
	if err := c.Main(); err == nil {
		t.Error("expected error without REGISTER")
	}
	if err := c.Main("HDMI_CONTROL"); err == nil {
		t.Error("expected error without VALUE")
	}
	if err := c.Main("-defs", "../../internal/dcn/testdata/flat",
		"HDMI_CONTROL", "0x37"); err == nil {
		t.Error("expected error without -version")
	}
}

func TestBadValue(t *testing.T) {
	c := Command{}
	err := c.Main("-defs", "../../internal/dcn/testdata/flat",
		"-version", "3.2.1", "HDMI_CONTROL", "zzz")
	if err == nil {
		t.Error("expected error for unparsable VALUE")
	}
}

func TestUnknownRegister(t *testing.T) {
	c := Command{}
	err := c.Main("-defs", "../../internal/dcn/testdata/flat",
		"-version", "3.2.1", "NO_SUCH_REG", "0")
	if err == nil {
		t.Error("expected error for unknown register")
	}
}

func ExampleCommand_Main() {
	c := Command{}
	err := c.Main("-defs", "../../internal/dcn/testdata/flat",
		"-version", "3.2.1", "HDMI_CONTROL", "0x37")
	if err != nil {
		panic(err)
	}
	// Output:
	//	regHDMI_CONTROL: 0x00000037
	//		HDMI_ENABLE: 1
	//		KEEPOUT_MODE: 1
}
