package airlift

import "errors"

// BluetoothAdapter is the handle returned by Controller.StartBluetooth. It is
// the transport surface an HCI host stack drives: buffered non-blocking reads
// plus flow-controlled writes.
type BluetoothAdapter interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

// BluetoothFactory constructs the adapter handle for a chip that has just
// been reset into Bluetooth mode. rts and cts are the gpio0 and busy lines,
// repurposed for flow control.
type BluetoothFactory func(uart UART, rts, cts Pin) (BluetoothAdapter, error)

// ErrHCITimeout is returned when the ESP32 keeps CTS asserted for too long
// during a write.
var ErrHCITimeout = errors.New("airlift: HCI write timeout")

const writeAttempts = 200

// HCIUART adapts the ESP32 UART into an HCI transport with software flow
// control on the RTS/CTS lines.
type HCIUART struct {
	uart UART

	rts, cts Pin
}

// HCIFactory is the stock BluetoothFactory; it returns an *HCIUART.
func HCIFactory(uart UART, rts, cts Pin) (BluetoothAdapter, error) {
	return NewHCIUART(uart, rts, cts)
}

// NewHCIUART wraps uart with software flow control. RTS starts high, telling
// the ESP32 to hold its transmissions until the host is ready to read.
func NewHCIUART(uart UART, rts, cts Pin) (*HCIUART, error) {
	h := &HCIUART{uart: uart, rts: rts, cts: cts}

	h.rts.Configure(PinConfig{Mode: PinOutput})
	h.rts.Set(true)

	h.cts.Configure(PinConfig{Mode: PinInput})

	return h, nil
}

// StartRead drops RTS so the ESP32 may transmit.
func (h *HCIUART) StartRead() {
	h.rts.Set(false)
}

// EndRead raises RTS again after a read burst.
func (h *HCIUART) EndRead() {
	h.rts.Set(true)
}

func (h *HCIUART) Buffered() int {
	return h.uart.Buffered()
}

func (h *HCIUART) ReadByte() (byte, error) {
	return h.uart.ReadByte()
}

func (h *HCIUART) Write(buf []byte) (int, error) {
	retries := writeAttempts
	for h.cts.Get() {
		retries--
		if retries == 0 {
			return 0, ErrHCITimeout
		}
	}

	return h.uart.Write(buf)
}
