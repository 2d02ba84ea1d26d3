// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package regdump

import "fmt"

func (g *Regdump) apropos(args ...string) error {
	pad := func(n int) {
		if n < 0 {
			fmt.Print("\n\t\t")
		} else {
			fmt.Print("                "[:n])
		}
	}
	if len(args) == 0 {
		args = g.Names()
	}
	for i, name := range args {
		if len(name) == 0 {
			continue
		}
		if v, found := g.ByName[name]; found {
			fmt.Print(name)
			pad(16 - len(name))
			fmt.Println(v.Apropos())
		} else if i == 0 {
			return fmt.Errorf("%s: not found", name)
		}
	}
	return nil
}
