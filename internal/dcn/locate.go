// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is where the definition sources are installed.
const DefaultDir = "/usr/share/dcn-regdump"

// Aliases maps detected display core versions to the file-naming version of
// their definition sources, for the generations where the driver's version
// string and the header naming diverge.
var Aliases = map[string]string{
	"4.0.1": "4_1_0",
}

// Locate resolves the best available definition source for a version, in
// strict priority order: the flat pair named by the compact version, the
// header pair named by the underscored version, then both again through the
// alias table. The flat pair is only selected when both of its files exist;
// the header pair is selected on its offset header alone.
func Locate(dir, version string) (Source, error) {
	for _, v := range []string{version, Aliases[version]} {
		if v == "" {
			continue
		}
		if src := locate(dir, v); src != nil {
			return src, nil
		}
	}
	return nil, &DefsNotFoundError{Version: version, Available: Versions(dir)}
}

func locate(dir, version string) Source {
	c := compact(version)
	regs := filepath.Join(dir, "dcn"+c+"_regs.txt")
	masks := filepath.Join(dir, "dcn"+c+"_sh_mask.txt")
	if exists(regs) && exists(masks) {
		return &flatSource{regs: regs, masks: masks}
	}
	u := underscored(version)
	offsets := filepath.Join(dir, "dcn_"+u+"_offset.h")
	if exists(offsets) {
		return &headerSource{
			offsets: offsets,
			masks:   filepath.Join(dir, "dcn_"+u+"_sh_mask.h"),
		}
	}
	return nil
}

// Versions lists the definition versions discoverable in dir, derived from
// the offset header file names.
func Versions(dir string) []string {
	matches, _ := filepath.Glob(filepath.Join(dir, "dcn_*_offset.h"))
	versions := make([]string, 0, len(matches))
	for _, m := range matches {
		v := filepath.Base(m)
		v = strings.TrimPrefix(v, "dcn_")
		v = strings.TrimSuffix(v, "_offset.h")
		versions = append(versions, strings.ReplaceAll(v, "_", "."))
	}
	sort.Strings(versions)
	return versions
}

// compact is the version with separators removed, e.g. "3.2.1" -> "321";
// file names of the flat form use it.
func compact(v string) string {
	return strings.NewReplacer(".", "", "_", "").Replace(v)
}

// underscored is the version with dots replaced by underscores; file names
// of the header form use it. Alias table entries are already underscored.
func underscored(v string) string {
	return strings.ReplaceAll(v, ".", "_")
}

func exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}
