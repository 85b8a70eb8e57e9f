package serial

import (
	"runtime"
	"strconv"
	"strings"
)

// normalizePortPath rewrites high-numbered Windows COM identifiers into the
// extended-path form the Win32 API requires: COM10 and above must be opened
// as \\.\COMn. All other identifiers, and every identifier on other
// platforms, pass through unchanged. The rewrite applies only to the path
// handed to the OS open call; the registry keys entries by the original
// identifier.
func normalizePortPath(name string) string {
	return normalizePortPathFor(runtime.GOOS, name)
}

func normalizePortPathFor(goos, name string) string {
	if goos != "windows" {
		return name
	}
	suffix, ok := strings.CutPrefix(name, "COM")
	if !ok {
		return name
	}
	num, err := strconv.Atoi(suffix)
	if err != nil || num < 10 {
		return name
	}
	return `\\.\` + name
}
