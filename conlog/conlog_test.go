// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"bytes"
	"testing"
)

func TestPrintf(t *testing.T) {
	defer SetPrintf(stdout)
	defer SetDebugPrintf(nil)

	var out, dbg bytes.Buffer
	SetPrintf(Writer(&out))
	Printf("nodes %d\n", 3)
	DPrintf("hidden\n")
	if got, want := out.String(), "nodes 3\n"; got != want {
		t.Errorf("Printf wrote %q, want %q", got, want)
	}

	SetDebugPrintf(Writer(&dbg))
	DPrintf("depth %d", 2)
	if got, want := dbg.String(), "depth 2"; got != want {
		t.Errorf("DPrintf wrote %q, want %q", got, want)
	}
}
