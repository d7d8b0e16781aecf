package airlift

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewHCIUART(t *testing.T) {
	uart := &testUART{}
	rts := &testPin{}
	cts := &testPin{}

	h, err := NewHCIUART(uart, rts, cts)
	if err != nil {
		t.Fatalf("NewHCIUART failed: %v", err)
	}
	if h == nil {
		t.Fatal("NewHCIUART returned nil")
	}

	if !rts.configured || rts.mode != PinOutput || !rts.level {
		t.Error("RTS not configured as output driven high")
	}
	if !cts.configured || cts.mode != PinInput {
		t.Error("CTS not configured as input")
	}
}

func TestHCIUARTReadFlowControl(t *testing.T) {
	uart := &testUART{rx: []byte{0x04, 0x0e}}
	rts := &testPin{}
	cts := &testPin{}

	h, err := NewHCIUART(uart, rts, cts)
	if err != nil {
		t.Fatalf("NewHCIUART failed: %v", err)
	}

	h.StartRead()
	if rts.level {
		t.Error("RTS still high during read")
	}
	if h.Buffered() != 2 {
		t.Errorf("Buffered = %d, want 2", h.Buffered())
	}
	if b, err := h.ReadByte(); err != nil || b != 0x04 {
		t.Errorf("ReadByte = (%#x, %v), want (0x04, nil)", b, err)
	}
	h.EndRead()
	if !rts.level {
		t.Error("RTS not raised after read")
	}
}

func TestHCIUARTWrite(t *testing.T) {
	uart := &testUART{}
	rts := &testPin{}
	cts := &testPin{}

	h, err := NewHCIUART(uart, rts, cts)
	if err != nil {
		t.Fatalf("NewHCIUART failed: %v", err)
	}

	packet := []byte{0x01, 0x03, 0x0c, 0x00}
	n, err := h.Write(packet)
	if err != nil || n != len(packet) {
		t.Fatalf("Write = (%d, %v), want (%d, nil)", n, err, len(packet))
	}
	if !bytes.Equal(uart.tx, packet) {
		t.Errorf("UART received % x, want % x", uart.tx, packet)
	}

	// With CTS held the write must give up instead of transmitting.
	cts.level = true
	uart.tx = nil
	if _, err := h.Write(packet); !errors.Is(err, ErrHCITimeout) {
		t.Errorf("Write with CTS held returned %v, want %v", err, ErrHCITimeout)
	}
	if len(uart.tx) != 0 {
		t.Error("bytes were transmitted while CTS was held")
	}
}
