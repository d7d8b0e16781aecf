// Package airlift manages an ESP32 wireless co-processor running NINA/AirLift
// firmware, attached to a host microcontroller over SPI and UART.
//
// The ESP32 runs one of two mutually exclusive firmware paths, selected by pin
// strapping before reset: Bluetooth HCI passthrough over the UART, or Wifi
// over the SPI bus. This package owns the strapping pins and the reset
// sequence, arbitrates between the two modes, and hands the UART to an HCI
// host stack such as tinygo.org/x/bluetooth once the chip is up.
package airlift // import "tinygo.org/x/airlift"

import "errors"

// Mode is the exclusive operating mode of the ESP32.
type Mode uint8

const (
	// ModeNotInUse means the ESP32 is not currently being used.
	ModeNotInUse Mode = iota

	// ModeBluetooth means the ESP32 is in HCI Bluetooth mode.
	ModeBluetooth

	// ModeWifi means the ESP32 is in Wifi mode.
	ModeWifi
)

func (m Mode) String() string {
	switch m {
	case ModeNotInUse:
		return "not in use"
	case ModeBluetooth:
		return "bluetooth"
	case ModeWifi:
		return "wifi"
	}
	return "unknown"
}

var (
	ErrModeConflict         = errors.New("airlift: requested mode conflicts with current mode")
	ErrNoStartupResponse    = errors.New("airlift: ESP32 did not respond with a startup message")
	ErrGarbledStartup       = errors.New("airlift: garbled ESP32 startup message")
	ErrWifiNotImplemented   = errors.New("airlift: Wifi mode not implemented")
	ErrBluetoothUnsupported = errors.New("airlift: no Bluetooth adapter factory configured")
)
