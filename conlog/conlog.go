// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog routes console output of the binary.
package conlog

import (
	"fmt"
	"io"
	"os"
)

var (
	p  func(string, ...interface{}) = stdout
	dp func(string, ...interface{}) = discard
)

func stdout(format string, v ...interface{}) {
	fmt.Fprintf(os.Stdout, format, v...)
}

func discard(string, ...interface{}) {}

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

// SetDebugPrintf sets the printer used by DPrintf. nil silences DPrintf.
func SetDebugPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = discard
	}
	dp = f
}

// Writer returns a printf that writes to w.
func Writer(w io.Writer) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		fmt.Fprintf(w, format, v...)
	}
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

func DPrintf(format string, v ...interface{}) {
	dp(format, v...)
}
