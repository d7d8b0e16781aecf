package airlift

// PinMode selects the direction of a digital I/O line.
type PinMode uint8

const (
	PinOutput PinMode = iota
	PinInput
)

// PinConfig holds the configuration for a digital I/O line.
type PinConfig struct {
	Mode PinMode
}

// Pin is a single digital I/O line. It follows the machine.Pin contract so
// that baremetal implementations are thin wrappers; tests use scripted fakes.
type Pin interface {
	// Configure sets the direction of the pin.
	Configure(config PinConfig)

	// Set drives the pin high (true) or low (false). Only valid after the
	// pin has been configured as an output.
	Set(level bool)

	// Get returns the current level of the pin.
	Get() bool
}

// UARTConfig holds the configuration for a serial channel.
type UARTConfig struct {
	BaudRate uint32
}

// UART is the serial channel to the ESP32. Reads are non-blocking: Buffered
// reports how many received bytes are immediately available, and Read returns
// at most that many. Implemented by machine.UART on TinyGo targets and by
// SerialUART on hosts.
type UART interface {
	Configure(config UARTConfig) error
	Buffered() int
	ReadByte() (byte, error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
