//go:build windows

package hostprobe

import (
	"errors"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// openLiveKey opens the key against the native registry. The handle is
// released immediately; only existence matters.
func openLiveKey(root RegRoot, path string) Presence {
	k, err := registry.OpenKey(nativeRoot(root), path, registry.QUERY_VALUE)
	if err == nil {
		k.Close()
		return Found
	}
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return Denied
	}
	return Missing
}

func nativeRoot(root RegRoot) registry.Key {
	switch root {
	case RootHKCU:
		return registry.CURRENT_USER
	case RootHKLM:
		return registry.LOCAL_MACHINE
	case RootHKU:
		return registry.USERS
	case RootHKCR:
		return registry.CLASSES_ROOT
	default:
		return 0
	}
}

// liveOSVersion reads the true kernel version, unaffected by manifest
// compatibility shims.
func liveOSVersion() float64 {
	major, minor, _ := windows.RtlGetNtVersionNumbers()
	return float64(major) + float64(minor)/10
}
