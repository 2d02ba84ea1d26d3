// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Source is one resolved pair of definition inputs: an address-offset source
// and a bit-field source. The locator selects the source once per run; the
// two on-disk formats load into the same database.
type Source interface {
	// Format returns "flat" or "header".
	Format() string
	Load() (*DB, error)
}

const baseIdxSuffix = "_BASE_IDX"

// parseNum converts a definition literal to a 32 bit value. Header derived
// literals may carry L or UL suffixes which aren't part of the number.
func parseNum(file string, line int, lit string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimRight(lit, "LUlu"), 0, 32)
	if err != nil {
		return 0, &MalformedError{File: file, Line: line, Text: lit, Err: err}
	}
	return uint32(v), nil
}

// setOffset files an offset-source entry: a BASE_IDX entry completes the
// owning register's record, anything else is the register's offset.
func setOffset(db *DB, file string, line int, name, lit string) error {
	v, err := parseNum(file, line, lit)
	if err != nil {
		return err
	}
	if strings.HasSuffix(name, baseIdxSuffix) {
		db.SetBaseIdx(strings.TrimSuffix(name, baseIdxSuffix), int(v))
	} else {
		db.SetOffset(name, v)
	}
	return nil
}

// setField files a bit-field entry under its full name with the mask or
// shift suffix removed. Shift names end in __SHIFT, mask names in _MASK;
// anything else in a bit-field source is unrelated and ignored. Field names
// are stored without the register naming-convention prefix, which the flat
// form carries and the header form doesn't.
func setField(db *DB, file string, line int, name, lit string) error {
	var set func(string, uint32)
	var base string
	switch {
	case strings.HasSuffix(name, "__SHIFT"):
		base = strings.TrimSuffix(name, "__SHIFT")
		set = db.SetShift
	case strings.HasSuffix(name, "_MASK"):
		base = strings.TrimSuffix(name, "_MASK")
		set = db.SetMask
	default:
		return nil
	}
	v, err := parseNum(file, line, lit)
	if err != nil {
		return err
	}
	set(StripPrefix(base), v)
	return nil
}

// flatSource is the pre-processed form: NAME=VALUE per line, already in
// final numeric form. Cheaper to parse than the headers it was derived
// from, so the locator prefers it.
type flatSource struct {
	regs  string
	masks string
}

func (s *flatSource) Format() string { return "flat" }

func (s *flatSource) Load() (*DB, error) {
	db := NewDB()
	if err := scanFlat(s.regs, s.masks, db, setOffset); err != nil {
		return nil, err
	}
	if err := scanFlat(s.masks, s.regs, db, setField); err != nil {
		return nil, err
	}
	return db, nil
}

func scanFlat(fn, counterpart string, db *DB,
	set func(*DB, string, int, string, string) error) error {
	f, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return &IncompletePairError{Have: counterpart, Missing: fn}
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:eq])
		lit := strings.TrimSpace(line[eq+1:])
		if err = set(db, fn, n, name, lit); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// headerSource is the raw driver header form: the offset header defines
// prefixed register macros, the sh_mask header defines
// REGISTER__FIELD_MASK / REGISTER__FIELD__SHIFT macro pairs.
type headerSource struct {
	offsets string
	masks   string
}

var (
	offsetDefine = regexp.MustCompile(
		`^\s*#define\s+((?:reg|mm)[A-Za-z0-9_]+)\s+(\S+)`)
	maskDefine = regexp.MustCompile(
		`^\s*#define\s+([A-Za-z0-9_]+)\s+(\S+)`)
)

func (s *headerSource) Format() string { return "header" }

func (s *headerSource) Load() (*DB, error) {
	db := NewDB()
	if err := scanHeader(s.offsets, s.masks, offsetDefine, db,
		setOffset); err != nil {
		return nil, err
	}
	if err := scanHeader(s.masks, s.offsets, maskDefine, db,
		setField); err != nil {
		return nil, err
	}
	return db, nil
}

func scanHeader(fn, counterpart string, define *regexp.Regexp, db *DB,
	set func(*DB, string, int, string, string) error) error {
	f, err := os.Open(fn)
	if err != nil {
		if os.IsNotExist(err) {
			return &IncompletePairError{Have: counterpart, Missing: fn}
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		m := define.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		if err = set(db, fn, n, m[1], m[2]); err != nil {
			return err
		}
	}
	return scanner.Err()
}
