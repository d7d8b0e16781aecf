//go:build baremetal && airlift_nina_init

package airlift

import "machine"

func init() {
	DefaultConfig = Config{
		Reset:           MachinePin(machine.NINA_RESETN),
		GPIO0:           MachinePin(machine.NINA_GPIO0),
		Busy:            MachinePin(machine.NINA_ACK),
		ChipSelect:      MachinePin(machine.NINA_CS),
		UART:            MachineUART(machine.UART_NINA, machine.NINA_TX, machine.NINA_RX),
		ResetActiveHigh: !machine.NINA_RESET_INVERTED,
		Bluetooth:       HCIFactory,
	}
}
