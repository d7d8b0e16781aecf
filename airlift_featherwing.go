//go:build baremetal && airlift_featherwing_init

package airlift

import "machine"

// AirLift FeatherWing wiring: the ESP32 hangs off the default UART with the
// strapping lines on D10-D13, reset active low.
func init() {
	DefaultConfig = Config{
		Reset:           MachinePin(machine.D12),
		GPIO0:           MachinePin(machine.D10),
		Busy:            MachinePin(machine.D11),
		ChipSelect:      MachinePin(machine.D13),
		UART:            MachineUART(machine.DefaultUART, machine.UART_TX_PIN, machine.UART_RX_PIN),
		ResetActiveHigh: false,
		Bluetooth:       HCIFactory,
	}
}
