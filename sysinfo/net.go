package sysinfo

import (
	"net"
	"time"
)

// outboundIP returns the local address the kernel would use for outbound
// traffic. Dialing UDP only selects a route; nothing is sent.
func outboundIP() string {
	d := net.Dialer{Timeout: 500 * time.Millisecond}
	conn, err := d.Dial("udp", "8.8.8.8:53")
	if err != nil {
		return ""
	}
	defer func() { _ = conn.Close() }()

	ua, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}
	ip4 := ua.IP.To4()
	if ip4 == nil || ip4.IsLoopback() {
		return ""
	}
	return ip4.String()
}
