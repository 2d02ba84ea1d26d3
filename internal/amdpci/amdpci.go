// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package amdpci locates the display device on the PCI bus and resolves its
// register aperture from sysfs.
package amdpci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

var sysBusPciPath = "/sys/bus/pci/devices"

const (
	VendorAMD = 0x1002

	classDisplay = 0x03

	// the register aperture of AMD display devices is BAR 5
	regResource = 5
)

var ErrNoDevice = errors.New("no AMD display device found")

// Device is a discovered display device. RegBase is the bus address of the
// register aperture; the register code treats it as an opaque integer.
type Device struct {
	Addr    string
	RegBase uint64
	RegSize uint64
}

// Find returns the first display-class device of the given vendor on the
// PCI bus.
func Find(vendor uint16) (*Device, error) {
	fis, err := ioutil.ReadDir(sysBusPciPath)
	if err != nil {
		return nil, err
	}
	for _, fi := range fis {
		if !match(sysBusPciPath+"/"+fi.Name(), vendor) {
			continue
		}
		return Open(fi.Name())
	}
	return nil, ErrNoDevice
}

// Open resolves the register aperture of the device at the given bus
// address, e.g. "0000:04:00.0".
func Open(addr string) (*Device, error) {
	f, err := os.Open(sysBusPciPath + "/" + addr + "/resource")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base, size, err := ParseResource(f, regResource)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", addr, err)
	}
	return &Device{Addr: addr, RegBase: base, RegSize: size}, nil
}

func match(dir string, vendor uint16) bool {
	f, err := os.Open(dir + "/config")
	if err != nil {
		return false
	}
	defer f.Close()

	var buf [2]byte

	// vendor id, config space offset 0
	if _, err = f.ReadAt(buf[:2], 0); err != nil {
		return false
	}
	if uint16(buf[0])|uint16(buf[1])<<8 != vendor {
		return false
	}

	// base class, config space offset 0xb
	if _, err = f.ReadAt(buf[:1], 0xb); err != nil {
		return false
	}
	return buf[0] == classDisplay
}

// ParseResource returns the start address and byte size of the idx'th
// region of a sysfs pci resource file.
func ParseResource(r io.Reader, idx int) (base, size uint64, err error) {
	scanner := bufio.NewScanner(r)
	for i := 0; scanner.Scan(); i++ {
		if i != idx {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("resource %d: short line", idx)
		}
		start, err := strconv.ParseUint(fields[0], 0, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("resource %d: %v", idx, err)
		}
		end, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("resource %d: %v", idx, err)
		}
		if start == 0 && end == 0 {
			return 0, 0, fmt.Errorf("resource %d: not assigned", idx)
		}
		return start, end - start + 1, nil
	}
	if err = scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, fmt.Errorf("resource %d: no such region", idx)
}
