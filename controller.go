package airlift

import (
	"errors"
	"time"
	"unicode/utf8"

	"tinygo.org/x/drivers"
)

const (
	uartBaudRate = 115200

	// Reset is asserted for 100ms, then the firmware gets 1s to boot and
	// print its startup message.
	resetHoldTime = 100 * time.Millisecond
	bootTime      = 1000 * time.Millisecond
)

var (
	errMissingPin  = errors.New("airlift: missing reset, gpio0, busy or chip select pin")
	errMissingUART = errors.New("airlift: missing UART")
)

// Config holds the wiring between the host and the ESP32.
type Config struct {
	// Reset, GPIO0, Busy and ChipSelect are the strapping and handshake
	// lines of the ESP32. GPIO0 doubles as RTS and Busy doubles as CTS once
	// the chip is in Bluetooth mode.
	Reset      Pin
	GPIO0      Pin
	Busy       Pin
	ChipSelect Pin

	// UART is the serial channel to the ESP32, configured at 115200 baud
	// by New.
	UART UART

	// SPI is the bus for the Wifi data path. It is held but not clocked
	// while Wifi mode is unimplemented.
	SPI drivers.SPI

	// ResetActiveHigh selects the polarity of the reset line. Most AirLift
	// boards use an active-low reset.
	ResetActiveHigh bool

	// Bluetooth constructs the adapter handle returned by StartBluetooth.
	// Leave nil on systems without Bluetooth support; StartBluetooth then
	// fails with ErrBluetoothUnsupported.
	Bluetooth BluetoothFactory

	// Sleep is called for the fixed delays of the reset sequence. Defaults
	// to time.Sleep.
	Sleep func(time.Duration)
}

// DefaultConfig holds the board wiring used by NewDefault. Board support
// files set it in init when one of the airlift_*_init build tags is active.
var DefaultConfig Config

// Controller owns the strapping pins and the UART of an attached ESP32 and
// arbitrates between its operating modes. It assumes exclusive, single-caller
// use; none of its methods are safe for concurrent use.
type Controller struct {
	mode Mode

	reset Pin
	gpio0 Pin
	busy  Pin
	cs    Pin

	uart UART
	spi  drivers.SPI

	resetActiveHigh bool

	btFactory BluetoothFactory
	adapter   BluetoothAdapter

	sleep func(time.Duration)
}

// New wires up a controller for the ESP32 described by config. The reset line
// is parked at its inactive level and the UART is configured at 115200 baud.
// The ESP32 itself is left alone until the first mode start.
func New(config Config) (*Controller, error) {
	if config.Reset == nil || config.GPIO0 == nil || config.Busy == nil || config.ChipSelect == nil {
		return nil, errMissingPin
	}
	if config.UART == nil {
		return nil, errMissingUART
	}

	c := &Controller{
		mode:            ModeNotInUse,
		reset:           config.Reset,
		gpio0:           config.GPIO0,
		busy:            config.Busy,
		cs:              config.ChipSelect,
		uart:            config.UART,
		spi:             config.SPI,
		resetActiveHigh: config.ResetActiveHigh,
		btFactory:       config.Bluetooth,
		sleep:           config.Sleep,
	}
	if c.sleep == nil {
		c.sleep = time.Sleep
	}

	c.reset.Configure(PinConfig{Mode: PinOutput})
	c.reset.Set(!c.resetActiveHigh)

	if err := c.uart.Configure(UARTConfig{BaudRate: uartBaudRate}); err != nil {
		return nil, err
	}

	return c, nil
}

// NewDefault wires up a controller from DefaultConfig.
func NewDefault() (*Controller, error) {
	return New(DefaultConfig)
}

// Mode returns the current operating mode of the ESP32.
func (c *Controller) Mode() Mode {
	return c.mode
}

// resetDevice toggles the reset line, waits for the firmware to boot, and
// returns whatever startup message is waiting on the UART. Only the bytes
// immediately available are drained; the read does not block.
func (c *Controller) resetDevice() []byte {
	c.reset.Set(c.resetActiveHigh)
	c.sleep(resetHoldTime)
	c.reset.Set(!c.resetActiveHigh)

	c.sleep(bootTime)

	n := c.uart.Buffered()
	if n == 0 {
		return nil
	}
	startup := make([]byte, n)
	n, err := c.uart.Read(startup)
	if err != nil {
		return nil
	}
	return startup[:n]
}

// StartBluetooth puts the ESP32 in HCI Bluetooth mode, if it is not already
// doing something else, and returns the adapter handle for it. Calling it
// again while Bluetooth mode is active returns the same handle without
// resetting the chip. With debug set, the startup message is required to be
// valid UTF-8 and is printed to the console.
//
// The mode transition commits only after the whole sequence has succeeded;
// on any error the controller stays in its previous mode.
func (c *Controller) StartBluetooth(debug bool) (BluetoothAdapter, error) {
	if c.mode == ModeBluetooth {
		return c.adapter, nil
	}
	if c.mode == ModeWifi {
		return nil, ErrModeConflict
	}
	if c.btFactory == nil {
		return nil, ErrBluetoothUnsupported
	}

	// Boot the ESP32 from SPI flash.
	c.gpio0.Configure(PinConfig{Mode: PinOutput})
	c.gpio0.Set(true)

	// Select the HCI firmware path.
	c.cs.Configure(PinConfig{Mode: PinOutput})
	c.cs.Set(false)

	startup := c.resetDevice()
	if len(startup) == 0 {
		return nil, ErrNoStartupResponse
	}
	if debug {
		if !utf8.Valid(startup) {
			return nil, ErrGarbledStartup
		}
		println(string(startup))
	}

	adapter, err := c.btFactory(c.uart, c.gpio0, c.busy)
	if err != nil {
		return nil, err
	}

	c.mode = ModeBluetooth
	c.adapter = adapter
	return adapter, nil
}

// StopBluetooth resets the ESP32 out of Bluetooth mode. It is a no-op when
// Bluetooth mode is not active. The cached adapter handle is dropped, so a
// later StartBluetooth runs the full reset sequence again.
func (c *Controller) StopBluetooth() error {
	if c.mode != ModeBluetooth {
		return nil
	}
	c.resetDevice()
	c.mode = ModeNotInUse
	c.adapter = nil
	return nil
}
