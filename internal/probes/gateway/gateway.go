// Package gateway provides the default-gateway (router) IP probe.
//
// This probe is soft: a machine without a default route is a normal
// environment (containers often have none), so "no result" is a first-class
// outcome distinct from a command failure.
package gateway

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const commandTimeout = 5 * time.Second

// Lookup inspects the routing table via `ip route` and returns the default
// gateway address. found is false when no default route exists; err is
// non-nil only when the command itself fails or times out.
func Lookup(ctx context.Context) (ip string, found bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ip", "route")

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", false, err
	}

	ip, found = parseRoutes(stdout.String())
	return ip, found, nil
}

// parseRoutes finds the first line whose first field is "default" and returns
// its third whitespace-separated field, e.g.
// "default via 192.168.1.1 dev eth0" -> "192.168.1.1".
func parseRoutes(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "default" {
			return fields[2], true
		}
	}
	return "", false
}
