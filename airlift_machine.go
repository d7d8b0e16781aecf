//go:build baremetal

package airlift

import "machine"

// MachinePin adapts a machine.Pin to the Pin interface.
func MachinePin(p machine.Pin) Pin {
	return machinePin{p}
}

type machinePin struct {
	pin machine.Pin
}

func (p machinePin) Configure(config PinConfig) {
	mode := machine.PinOutput
	if config.Mode == PinInput {
		mode = machine.PinInput
	}
	p.pin.Configure(machine.PinConfig{Mode: mode})
}

func (p machinePin) Set(level bool) {
	p.pin.Set(level)
}

func (p machinePin) Get() bool {
	return p.pin.Get()
}

// MachineUART adapts a machine.UART to the UART interface, remembering the
// TX/RX pins for Configure.
func MachineUART(uart *machine.UART, tx, rx machine.Pin) UART {
	return &machineUART{UART: uart, tx: tx, rx: rx}
}

type machineUART struct {
	*machine.UART

	tx, rx machine.Pin
}

func (u *machineUART) Configure(config UARTConfig) error {
	return u.UART.Configure(machine.UARTConfig{
		TX:       u.tx,
		RX:       u.rx,
		BaudRate: config.BaudRate,
	})
}
