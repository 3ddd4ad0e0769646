package desktop

import (
	"sync/atomic"
)

const UserAgentPrefix string = "Growi-Editor"

var (
	appPorts = []int{
		38427,
		38428,
		38429,
		38430,
		55392,
		55920,
	}
)

var portIndex atomic.Int32

// NextPort returns the next loopback port to try and the number of
// candidate ports.
func NextPort() (int, int) {
	currentPortIndex := portIndex.Load()
	defer func() {
		nextPort := (int(currentPortIndex) + 1) % len(appPorts)
		portIndex.Store(int32(nextPort))
	}()

	return appPorts[currentPortIndex], len(appPorts)
}
