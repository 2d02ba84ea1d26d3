// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dcver detects the display core hardware version from the kernel
// ring buffer.
package dcver

import (
	"errors"
	"os"
	"regexp"
	"syscall"

	"github.com/platinasystems/log"
)

// Path is a variable so tests can scan a plain file instead.
var Path = "/dev/kmsg"

// The amdgpu driver announces the display core version at init, e.g.
//
//	[drm] Display Core v3.2.104 initialized on DCN 3.0
//
// and on older kernels,
//
//	[drm] Display Core initialized with v3.2.104!
var announce = regexp.MustCompile(`Display Core.*?v([0-9]+(?:\.[0-9]+)+)`)

// Detect scans the kernel ring buffer for the display core version. An
// empty string means no driver announcement was found; the caller should
// ask the operator instead.
func Detect() (string, error) {
	f, err := os.OpenFile(Path, os.O_RDONLY|syscall.O_NONBLOCK, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var kmsg log.Kmsg
	var version string
	buf := make([]byte, 4096)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			kmsg.Parse(buf[:n])
			if v, found := Scan(kmsg.Msg); found {
				// keep the last announcement; it's from the
				// most recent driver load
				version = v
			}
		}
		if err != nil {
			if errors.Is(err, syscall.EPIPE) {
				// the ring buffer lapped us, keep reading
				continue
			}
			break
		}
	}
	return version, nil
}

// Scan extracts the dotted version from a driver announcement line.
func Scan(msg string) (string, bool) {
	m := announce.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	return m[1], true
}
