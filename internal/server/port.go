package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrNoFreePort is returned when every port in the scan range is taken.
var ErrNoFreePort = errors.New("no free port in range")

// Listen binds the first free TCP port in [start, end] on host and
// returns the bound listener together with the chosen port.
func Listen(host string, start, end int) (net.Listener, int, error) {
	for port := start; port <= end; port++ {
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err == nil {
			return ln, port, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %d-%d on %s", ErrNoFreePort, start, end, host)
}
