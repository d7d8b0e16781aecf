package airlift

import "tinygo.org/x/drivers/netlink"

// StartWifi puts the ESP32 in Wifi mode. Not yet implemented: the Wifi
// firmware path speaks a SPI protocol this package does not drive. The
// netlink.Netlinker return type is where the eventual implementation will
// slot into the drivers network stack.
func (c *Controller) StartWifi() (netlink.Netlinker, error) {
	return nil, ErrWifiNotImplemented
}

// StopWifi stops Wifi on the ESP32. Not yet implemented.
func (c *Controller) StopWifi() error {
	return ErrWifiNotImplemented
}
