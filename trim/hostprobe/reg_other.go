//go:build !windows

package hostprobe

// openLiveKey has no native registry to consult off Windows; every key
// is missing. Tests substitute a Fake host instead.
func openLiveKey(RegRoot, string) Presence {
	return Missing
}

// liveOSVersion defaults to a modern version off Windows so DetectOS
// lower bounds behave sensibly in cross-platform runs.
func liveOSVersion() float64 {
	return 10.0
}
