// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package devmem reads device registers through a read-only /dev/mem
// mapping of the register aperture.
package devmem

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// Path is a variable so tests can map a plain file instead.
var Path = "/dev/mem"

type Mem struct {
	f    *os.File
	mem  []byte // page aligned mapping
	win  []byte // requested window
	base uint64
}

// Map maps size bytes of physical memory at base. The mapping is read only;
// this tool never writes device state.
func Map(base, size uint64) (*Mem, error) {
	f, err := os.OpenFile(Path, os.O_RDONLY|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	off := base & uint64(syscall.Getpagesize()-1)
	mem, err := syscall.Mmap(int(f.Fd()), int64(base-off), int(size+off),
		syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: mmap 0x%x: %v", Path, base, err)
	}
	return &Mem{f: f, mem: mem, win: mem[off:], base: base}, nil
}

// Read32 returns the 32 bit word at the absolute bus address addr.
func (m *Mem) Read32(addr uint64) (uint32, error) {
	if addr < m.base || addr+4 > m.base+uint64(len(m.win)) {
		return 0, fmt.Errorf("0x%x: outside mapped aperture", addr)
	}
	if addr&3 != 0 {
		return 0, fmt.Errorf("0x%x: unaligned", addr)
	}
	return *(*uint32)(unsafe.Pointer(&m.win[addr-m.base])), nil
}

func (m *Mem) Close() (err error) {
	if m.mem != nil {
		err = syscall.Munmap(m.mem)
		m.mem, m.win = nil, nil
	}
	if m.f != nil {
		if e := m.f.Close(); err == nil {
			err = e
		}
		m.f = nil
	}
	return
}
