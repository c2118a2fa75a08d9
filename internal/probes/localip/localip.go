// Package localip provides the outbound-facing local IP address probe.
package localip

import (
	"fmt"
	"net"
	"os"

	"github.com/nraihan/sysstatus/internal/probe"
)

// probeAddr is only used to make the OS pick an outbound interface; a UDP
// "connect" sends no packets.
const probeAddr = "8.8.8.8:80"

// Resolve returns the local IP address the OS would use for outbound traffic.
// It first binds a transient UDP socket towards a public address and reads
// back the local side; if that fails it falls back to resolving the machine's
// own hostname. Both failing yields a SystemInfoError carrying both
// diagnostics.
func Resolve() (string, error) {
	ip, dialErr := outboundIP()
	if dialErr == nil {
		return ip, nil
	}

	ip, hostErr := hostnameIP()
	if hostErr == nil {
		return ip, nil
	}

	return "", &probe.SystemInfoError{
		Reason: fmt.Sprintf("cannot determine IP address (socket: %v; hostname: %v)", dialErr, hostErr),
	}
}

func outboundIP() (string, error) {
	conn, err := net.Dial("udp", probeAddr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

func hostnameIP() (string, error) {
	host, err := os.Hostname()
	if err != nil {
		return "", err
	}

	ips, err := net.LookupIP(host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("no addresses for host %q", host)
	}

	// Prefer IPv4 when the hostname resolves to both families.
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return ips[0].String(), nil
}
