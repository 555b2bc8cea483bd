package util

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackpal/gateway"
)

// NetworkInfo describes the network this machine routes through by default
type NetworkInfo struct {
	Interface *net.Interface
	Gateway   net.IP
	UserIP    net.IP
	Cidr      string
}

// find the interface and network that contain ip
func interfaceForIP(ip net.IP) (*net.Interface, *net.IPNet, error) {
	interfaces, err := net.Interfaces()

	if err != nil {
		return nil, nil, err
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			_, ipnet, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ipnet.Contains(ip) {
				iface := iface
				return &iface, ipnet, nil
			}
		}
	}

	return nil, nil, errors.New("failed to find network for ip")
}

// GetNetworkInfo returns the outbound ip, interface and cidr block used to
// reach the default gateway
func GetNetworkInfo() (*NetworkInfo, error) {
	gw, err := gateway.DiscoverGateway()

	if err != nil {
		return nil, err
	}

	// udp doesn't make a full connection and will find the default ip
	// that traffic will use if say 2 are configured (wired and wireless)
	conn, err := net.Dial("udp", net.JoinHostPort(gw.String(), "80"))

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	iface, ipnet, err := interfaceForIP(localAddr.IP)

	if err != nil {
		return nil, err
	}

	size, _ := ipnet.Mask.Size()

	return &NetworkInfo{
		Interface: iface,
		Gateway:   gw,
		UserIP:    localAddr.IP,
		Cidr:      fmt.Sprintf("%s/%d", ipnet.IP.String(), size),
	}, nil
}
