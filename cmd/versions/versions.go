// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package versions

import (
	"fmt"

	"github.com/platinasystems/parms"

	"github.com/mkopec/dcn-regdump/internal/dcn"
	"github.com/mkopec/dcn-regdump/lang"
)

const (
	Name    = "versions"
	Apropos = "list display core versions with definitions on disk"
	Usage   = "versions [-defs DIR]"
)

var apropos = lang.Alt{
	lang.EnUS: Apropos,
}

type Command struct{}

func (Command) Apropos() lang.Alt { return apropos }
func (Command) String() string    { return Name }
func (Command) Usage() string     { return Usage }

func (Command) Main(args ...string) error {
	parm, args := parms.New(args, "-defs")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	if parm.ByName["-defs"] == "" {
		parm.ByName["-defs"] = dcn.DefaultDir
	}
	versions := dcn.Versions(parm.ByName["-defs"])
	if len(versions) == 0 {
		return fmt.Errorf("%s: no definitions", parm.ByName["-defs"])
	}
	for _, v := range versions {
		fmt.Println(v)
	}
	return nil
}
