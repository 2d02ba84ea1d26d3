// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Dump AMD display core registers with decoded bit-fields.
package main

import (
	"fmt"
	"os"

	regdump "github.com/mkopec/dcn-regdump"
	"github.com/mkopec/dcn-regdump/cmd"
	"github.com/mkopec/dcn-regdump/cmd/decode"
	"github.com/mkopec/dcn-regdump/cmd/dump"
	"github.com/mkopec/dcn-regdump/cmd/readreg"
	"github.com/mkopec/dcn-regdump/cmd/versions"
	"github.com/mkopec/dcn-regdump/lang"
)

var Regdump = &regdump.Regdump{
	NAME: "dcn-regdump",
	APROPOS: lang.Alt{
		lang.EnUS: "AMD display core register dump",
	},
	ByName: map[string]cmd.Cmd{
		"decode":   decode.Command{},
		"dump":     dump.Command{},
		"read":     readreg.Command{},
		"versions": versions.Command{},
	},
}

func main() {
	if err := Regdump.Main(os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", Regdump.NAME, err)
		os.Exit(1)
	}
}
