//go:build !tinygo

package airlift

import (
	"errors"

	"go.bug.st/serial"
)

// rxBufferSize matches the receive buffer of the UART peripherals on AirLift
// boards. Older received bytes are discarded once it fills up.
const rxBufferSize = 512

var errNoReceivedData = errors.New("airlift: receive buffer empty")

// SerialUART adapts a host serial port to the UART interface, for driving an
// ESP32 breakout over a USB serial bridge. Reads stay non-blocking by polling
// the port with a zero read timeout into an internal buffer.
type SerialUART struct {
	port serial.Port
	rx   []byte
}

// OpenSerialUART opens the named host serial port at 8N1 and wraps it.
func OpenSerialUART(name string) (*SerialUART, error) {
	mode := &serial.Mode{
		BaudRate: uartBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, err
	}
	return NewSerialUART(port)
}

// NewSerialUART wraps an already open host serial port.
func NewSerialUART(port serial.Port) (*SerialUART, error) {
	// A zero read timeout keeps Read from blocking when the port is idle.
	if err := port.SetReadTimeout(0); err != nil {
		return nil, err
	}
	return &SerialUART{port: port}, nil
}

func (u *SerialUART) Configure(config UARTConfig) error {
	return u.port.SetMode(&serial.Mode{
		BaudRate: int(config.BaudRate),
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

// poll drains whatever the port has into the receive buffer.
func (u *SerialUART) poll() {
	var chunk [rxBufferSize]byte
	n, err := u.port.Read(chunk[:])
	if err != nil || n == 0 {
		return
	}
	u.rx = append(u.rx, chunk[:n]...)
	if len(u.rx) > rxBufferSize {
		u.rx = u.rx[len(u.rx)-rxBufferSize:]
	}
}

func (u *SerialUART) Buffered() int {
	u.poll()
	return len(u.rx)
}

func (u *SerialUART) ReadByte() (byte, error) {
	if len(u.rx) == 0 {
		u.poll()
	}
	if len(u.rx) == 0 {
		return 0, errNoReceivedData
	}
	b := u.rx[0]
	u.rx = u.rx[1:]
	return b, nil
}

func (u *SerialUART) Read(p []byte) (n int, err error) {
	if len(u.rx) == 0 {
		u.poll()
	}
	n = copy(p, u.rx)
	u.rx = u.rx[n:]
	return n, nil
}

func (u *SerialUART) Write(p []byte) (n int, err error) {
	return u.port.Write(p)
}

// Close closes the underlying port.
func (u *SerialUART) Close() error {
	return u.port.Close()
}
