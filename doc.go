// Package serial implements a host-side serial communication backend: it
// enumerates available serial interfaces, opens and configures connections,
// and exchanges raw bytes with them.
//
// Two backends share a naming convention. Identifiers starting with
// VirtualPortPrefix are handled by the in-memory Simulator, which emulates
// three fixed devices (echo, reply, random) for testing without hardware.
// All other identifiers name real OS serial devices owned by the Registry.
//
// The Bridge type routes the five logical operations (list, open, close,
// write, read) to the backend matching the identifier namespace:
//
//	log := zerolog.Nop()
//	b := serial.New(log)
//
//	b.OpenPort(serial.Config{PortName: "VIRTUAL-COM1", BaudRate: 9600})
//	b.WriteData("VIRTUAL-COM1", "48656C6C6F", true)
//	data, _ := b.ReadData("VIRTUAL-COM1", 0)
//
// All operations are synchronous and poll-based: a caller invokes an
// operation and blocks until it returns. There are no background goroutines
// and no event-push model inside the package.
package serial
