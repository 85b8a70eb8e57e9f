package serial

import (
	"path"
	"strings"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes one available serial interface.
type PortInfo struct {
	Name string `json:"port_name"`
	Type string `json:"port_type"`
}

// List enumerates the serial interfaces visible to the process: real ports
// reported by the OS, classified by physical transport, followed by the
// three fixed virtual ports. The virtual entries are listed whether or not
// they are currently open. List never fails; if OS enumeration errors it
// logs a warning and yields the virtual entries alone.
func (r *Registry) List() []PortInfo {
	var infos []PortInfo

	details, err := detailPorts()
	if err != nil {
		r.log.Warn().Err(err).Msg("enumerating serial ports")
	}
	for _, d := range details {
		infos = append(infos, PortInfo{Name: d.Name, Type: classifyPort(d)})
	}

	return append(infos, virtualPortInfos()...)
}

// classifyPort derives a human-readable transport label for a detected port.
// USB devices carry their product string when the descriptor provides one;
// for the rest the device name is the only classification signal the
// enumerator exposes.
func classifyPort(d *enumerator.PortDetails) string {
	if d.IsUSB {
		if d.Product != "" {
			return "USB: " + d.Product
		}
		return "USB Device"
	}
	base := strings.ToLower(path.Base(d.Name))
	switch {
	case strings.Contains(base, "bluetooth") || strings.HasPrefix(base, "rfcomm"):
		return "Bluetooth"
	case strings.HasPrefix(base, "ttys"),
		strings.HasPrefix(base, "ttyama"),
		strings.HasPrefix(base, "ttymxc"),
		strings.HasPrefix(base, "ttyo"):
		// Platform UARTs: PCI or memory-mapped on-board controllers.
		return "PCI Port"
	default:
		return "Unknown"
	}
}
