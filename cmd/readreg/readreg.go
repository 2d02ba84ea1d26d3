// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package readreg

import (
	"fmt"
	"os"

	"github.com/platinasystems/parms"

	"github.com/mkopec/dcn-regdump/internal/amdpci"
	"github.com/mkopec/dcn-regdump/internal/assert"
	"github.com/mkopec/dcn-regdump/internal/dcn"
	"github.com/mkopec/dcn-regdump/internal/dcver"
	"github.com/mkopec/dcn-regdump/internal/devmem"
	"github.com/mkopec/dcn-regdump/lang"
)

const (
	Name    = "read"
	Apropos = "read and decode named display core registers"
	Usage   = "read [-defs DIR] [-version VERSION] [-device BUS-ADDR] REGISTER..."
	Man     = `
DESCRIPTION
	Read the named registers and decode their bit-fields. Register names
	may be given with or without the generation's naming-convention
	prefix, so HDMI_CONTROL also finds regHDMI_CONTROL or
	mmHDMI_CONTROL.`
)

var (
	apropos = lang.Alt{
		lang.EnUS: Apropos,
	}
	man = lang.Alt{
		lang.EnUS: Man,
	}
)

type Command struct{}

func (Command) Apropos() lang.Alt { return apropos }
func (Command) Man() lang.Alt     { return man }
func (Command) String() string    { return Name }
func (Command) Usage() string     { return Usage }

func (Command) Main(args ...string) error {
	parm, args := parms.New(args, "-defs", "-version", "-device")
	if len(args) == 0 {
		return fmt.Errorf("REGISTER: missing")
	}
	if parm.ByName["-defs"] == "" {
		parm.ByName["-defs"] = dcn.DefaultDir
	}
	if err := assert.Root(); err != nil {
		return err
	}

	version := parm.ByName["-version"]
	if version == "" {
		version, _ = dcver.Detect()
		if version == "" {
			return fmt.Errorf("display core version unknown; use -version")
		}
	}

	var dev *amdpci.Device
	var err error
	if addr := parm.ByName["-device"]; addr != "" {
		dev, err = amdpci.Open(addr)
	} else {
		dev, err = amdpci.Find(amdpci.VendorAMD)
	}
	if err != nil {
		return err
	}

	src, err := dcn.Locate(parm.ByName["-defs"], version)
	if err != nil {
		return err
	}
	db, err := src.Load()
	if err != nil {
		return err
	}
	db.ResolvePrefix()

	mem, err := devmem.Map(dev.RegBase, dev.RegSize)
	if err != nil {
		return err
	}
	defer mem.Close()

	d := dcn.Dumper{
		DB:   db,
		Base: dcn.DCNBase,
		Dev:  dev.RegBase,
		Read: mem.Read32,
		W:    os.Stdout,
	}
	for _, name := range args {
		if db.Register(name) == nil {
			prefixed := db.Prefix() + name
			if db.Register(prefixed) != nil {
				name = prefixed
			}
		}
		d.One(name)
	}
	return nil
}
