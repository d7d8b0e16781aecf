package airlift

import (
	"errors"
	"testing"
	"time"
)

// testPin records everything done to a digital line.
type testPin struct {
	mode       PinMode
	configured bool
	level      bool
	levels     []bool
}

func (p *testPin) Configure(config PinConfig) {
	p.mode = config.Mode
	p.configured = true
}

func (p *testPin) Set(level bool) {
	p.level = level
	p.levels = append(p.levels, level)
}

func (p *testPin) Get() bool {
	return p.level
}

var errTestBufferEmpty = errors.New("test UART: buffer empty")

// testUART serves scripted receive bytes and records writes.
type testUART struct {
	rx   []byte
	tx   []byte
	baud uint32
}

func (u *testUART) Configure(config UARTConfig) error {
	u.baud = config.BaudRate
	return nil
}

func (u *testUART) Buffered() int {
	return len(u.rx)
}

func (u *testUART) ReadByte() (byte, error) {
	if len(u.rx) == 0 {
		return 0, errTestBufferEmpty
	}
	b := u.rx[0]
	u.rx = u.rx[1:]
	return b, nil
}

func (u *testUART) Read(p []byte) (n int, err error) {
	n = copy(p, u.rx)
	u.rx = u.rx[n:]
	return n, nil
}

func (u *testUART) Write(p []byte) (n int, err error) {
	u.tx = append(u.tx, p...)
	return len(p), nil
}

// sleepRecorder captures the delays of the reset sequence instead of
// actually sleeping.
type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) {
	s.delays = append(s.delays, d)
}

// testESP32 bundles a controller with the fakes backing it.
type testESP32 struct {
	reset, gpio0, busy, cs *testPin
	uart                   *testUART
	sleep                  *sleepRecorder
	ctrl                   *Controller
}

func newTestESP32(t *testing.T, startup []byte, resetActiveHigh bool) *testESP32 {
	t.Helper()

	e := &testESP32{
		reset: &testPin{},
		gpio0: &testPin{},
		busy:  &testPin{},
		cs:    &testPin{},
		uart:  &testUART{rx: startup},
		sleep: &sleepRecorder{},
	}

	ctrl, err := New(Config{
		Reset:           e.reset,
		GPIO0:           e.gpio0,
		Busy:            e.busy,
		ChipSelect:      e.cs,
		UART:            e.uart,
		ResetActiveHigh: resetActiveHigh,
		Bluetooth:       HCIFactory,
		Sleep:           e.sleep.sleep,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.ctrl = ctrl
	return e
}
