package serial

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobug "go.bug.st/serial"
)

func newTestBridge() *Bridge {
	return New(zerolog.Nop())
}

func TestBridgeVirtualLifecycle(t *testing.T) {
	b := newTestBridge()

	msg, err := b.OpenPort(Config{PortName: VirtualEchoPort, BaudRate: 9600})
	if err != nil {
		t.Fatalf("OpenPort error: %v", err)
	}
	if msg != "Virtual port VIRTUAL-COM1 opened successfully" {
		t.Fatalf("OpenPort message = %q", msg)
	}

	data, err := b.ReadData(VirtualEchoPort, 5*time.Second)
	if err != nil {
		t.Fatalf("ReadData error: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("fresh virtual port returned % X, want empty", data)
	}

	msg, err = b.WriteData(VirtualEchoPort, "AB", true)
	if err != nil {
		t.Fatalf("WriteData error: %v", err)
	}
	if msg != "Sent 1 bytes" {
		t.Fatalf("WriteData message = %q, want %q", msg, "Sent 1 bytes")
	}

	// The timeout argument is ignored for virtual ports; the read drains
	// instantly.
	start := time.Now()
	data, err = b.ReadData(VirtualEchoPort, time.Hour)
	if err != nil {
		t.Fatalf("ReadData error: %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("virtual read blocked on the timeout")
	}
	if len(data) != 1 || data[0] != 0xAB {
		t.Fatalf("ReadData = % X, want AB", data)
	}

	msg, err = b.ClosePort(VirtualEchoPort)
	if err != nil {
		t.Fatalf("ClosePort error: %v", err)
	}
	if msg != "Virtual port VIRTUAL-COM1 closed successfully" {
		t.Fatalf("ClosePort message = %q", msg)
	}
}

func TestBridgeVirtualReply(t *testing.T) {
	b := newTestBridge()

	if _, err := b.OpenPort(Config{PortName: VirtualReplyPort, BaudRate: 9600}); err != nil {
		t.Fatalf("OpenPort error: %v", err)
	}

	msg, err := b.WriteData(VirtualReplyPort, "hi", false)
	if err != nil {
		t.Fatalf("WriteData error: %v", err)
	}
	if msg != "Sent 2 bytes" {
		t.Fatalf("WriteData message = %q, want %q", msg, "Sent 2 bytes")
	}

	data, err := b.ReadData(VirtualReplyPort, 0)
	if err != nil {
		t.Fatalf("ReadData error: %v", err)
	}
	if string(data) != "Received: hi" {
		t.Fatalf("ReadData = %q, want %q", data, "Received: hi")
	}
}

func TestBridgeHexValidationPrecedesDispatch(t *testing.T) {
	b := newTestBridge()

	// Invalid hex fails before any backend is consulted: no NotFound even
	// though the port is unopened.
	if _, err := b.WriteData(VirtualEchoPort, "ABC", true); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("WriteData error = %v, want ErrInvalidHex", err)
	}
	if _, err := b.WriteData("/dev/ttyUSB0", "XY", true); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("WriteData error = %v, want ErrInvalidHex", err)
	}
}

func TestBridgeWriteUnopenedFailsEitherNamespace(t *testing.T) {
	b := newTestBridge()

	if _, err := b.WriteData(VirtualEchoPort, "x", false); !errors.Is(err, ErrPortNotFound) {
		t.Fatalf("virtual WriteData error = %v, want ErrPortNotFound", err)
	}
	if _, err := b.WriteData("/dev/ttyUSB0", "x", false); !errors.Is(err, ErrPortNotFound) {
		t.Fatalf("real WriteData error = %v, want ErrPortNotFound", err)
	}
}

func TestBridgeCloseAsymmetry(t *testing.T) {
	b := newTestBridge()

	// Unopened virtual close succeeds.
	if _, err := b.ClosePort(VirtualEchoPort); err != nil {
		t.Fatalf("virtual ClosePort error = %v, want nil", err)
	}
	// Unopened real close fails with NotFound.
	if _, err := b.ClosePort("/dev/ttyUSB0"); !errors.Is(err, ErrPortNotFound) {
		t.Fatalf("real ClosePort error = %v, want ErrPortNotFound", err)
	}
}

func TestBridgeRealPortRouting(t *testing.T) {
	fake := &fakeHandle{readData: []byte("pong")}
	stubOpenPort(t, func(string, *gobug.Mode) (portHandle, error) { return fake, nil })

	b := newTestBridge()

	msg, err := b.OpenPort(Config{PortName: "/dev/ttyUSB0", BaudRate: 115200})
	if err != nil {
		t.Fatalf("OpenPort error: %v", err)
	}
	if msg != "Port /dev/ttyUSB0 opened successfully" {
		t.Fatalf("OpenPort message = %q", msg)
	}

	msg, err = b.WriteData("/dev/ttyUSB0", "70 69 6E 67", true)
	if err != nil {
		t.Fatalf("WriteData error: %v", err)
	}
	if msg != "Sent 4 bytes" {
		t.Fatalf("WriteData message = %q, want %q", msg, "Sent 4 bytes")
	}
	if string(fake.written()) != "ping" {
		t.Fatalf("handle received %q, want %q", fake.written(), "ping")
	}

	data, err := b.ReadData("/dev/ttyUSB0", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("ReadData error: %v", err)
	}
	if string(data) != "pong" {
		t.Fatalf("ReadData = %q, want %q", data, "pong")
	}

	msg, err = b.ClosePort("/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("ClosePort error: %v", err)
	}
	if msg != "Port /dev/ttyUSB0 closed successfully" {
		t.Fatalf("ClosePort message = %q", msg)
	}
	if !fake.closed {
		t.Fatal("handle not closed")
	}
}

func TestBridgeMetrics(t *testing.T) {
	b := newTestBridge()

	_, _ = b.OpenPort(Config{PortName: VirtualEchoPort, BaudRate: 9600})
	_, _ = b.WriteData(VirtualEchoPort, "abc", false)
	_, _ = b.ReadData(VirtualEchoPort, 0)

	snap := b.MetricsSnapshot()
	if snap.VirtualOpens != 1 {
		t.Fatalf("VirtualOpens = %d, want 1", snap.VirtualOpens)
	}
	if snap.VirtualWrites != 1 {
		t.Fatalf("VirtualWrites = %d, want 1", snap.VirtualWrites)
	}
	if snap.VirtualReads != 1 {
		t.Fatalf("VirtualReads = %d, want 1", snap.VirtualReads)
	}
	if snap.OpenAttempts != 0 {
		t.Fatalf("OpenAttempts = %d, want 0 (virtual opens bypass the registry)", snap.OpenAttempts)
	}
}
