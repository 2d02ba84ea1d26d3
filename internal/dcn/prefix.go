// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

// Two register naming conventions coexist across display core generations:
// soc15-era headers prefix register macros with "mm", later ones with "reg".
// A loaded database uses exactly one of the two.

var regConvention = []string{"reg", "mm"}

// ResolvePrefix determines which naming convention the loaded database uses.
// It must run once after parsing and before any enumeration by pattern.
func (db *DB) ResolvePrefix() {
	db.prefix = "mm"
	for _, name := range db.order {
		if hasConventionPrefix(name, "reg") {
			db.prefix = "reg"
			return
		}
	}
}

// Prefix returns the resolved naming-convention prefix.
func (db *DB) Prefix() string { return db.prefix }

// StripPrefix returns the register base name: the name with its
// naming-convention prefix removed. Names without a recognized prefix are
// returned unchanged.
func StripPrefix(name string) string {
	for _, p := range regConvention {
		if hasConventionPrefix(name, p) {
			return name[len(p):]
		}
	}
	return name
}

func hasConventionPrefix(name, p string) bool {
	if len(name) <= len(p) || name[:len(p)] != p {
		return false
	}
	// register names are upper case after the prefix
	c := name[len(p)]
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
