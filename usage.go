// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package regdump

import (
	"fmt"
	"strings"
)

type Usager interface {
	Usage() string
}

func Usage(v Usager) string {
	return fmt.Sprint("usage:\t", strings.TrimSpace(v.Usage()))
}

func (g *Regdump) usage(args ...string) error {
	var u Usager = g
	if len(args) > 0 {
		u = g.ByName[args[0]]
		if u == nil {
			return fmt.Errorf("%s: not found", args[0])
		}
	}
	fmt.Println(Usage(u))
	return nil
}
