package meminfo

import (
	"runtime"
	"testing"
)

func TestResident(t *testing.T) {
	rss, ok := Resident()
	if !ok {
		if runtime.GOOS == "linux" {
			t.Fatal("Resident() not available on linux")
		}
		t.Skip("no /proc on this platform")
	}
	if rss == 0 {
		t.Error("Resident() = 0, expected a running process to have pages resident")
	}
}
