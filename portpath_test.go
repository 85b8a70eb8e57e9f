package serial

import "testing"

func TestNormalizePortPathWindows(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"COM1", "COM1"},
		{"COM9", "COM9"},
		{"COM10", `\\.\COM10`},
		{"COM128", `\\.\COM128`},
		{"COM", "COM"},
		{"COMX", "COMX"},
		{"COM1X", "COM1X"},
		{"/dev/ttyUSB0", "/dev/ttyUSB0"},
	}

	for _, tc := range cases {
		if got := normalizePortPathFor("windows", tc.in); got != tc.want {
			t.Errorf("normalizePortPathFor(windows, %q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePortPathOtherPlatforms(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		if got := normalizePortPathFor(goos, "COM10"); got != "COM10" {
			t.Errorf("normalizePortPathFor(%s, COM10) = %q, want COM10", goos, got)
		}
	}
}
