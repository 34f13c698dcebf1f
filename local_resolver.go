package ddns

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// LocalAddresses returns at most one IPv4 and one IPv6 address for every interface that is up.
//
// When an interface has several addresses of a family,
// public unicast addresses are preferred over private ones,
// and private ones over everything else (link-local, loopback).
// Ties go to the address listed first.
func LocalAddresses() ([]NamedAddress, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("error listing interfaces: %w", err)
	}
	var addrs []NamedAddress
	var errs []error
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		a, err := iface.Addrs()
		if err != nil {
			errs = append(errs, fmt.Errorf("error looking up addresses for interface %s: %w", iface.Name, err))
			continue
		}
		// addr: ip+net:192.168.86.253/24
		// addr: ip+net:fd64:9f44:fc30:0:b951:8b16:2812:a227/64
		// addr: ip+net:fe80::2cc9:801b:3551:9a43/64
		var ips []netip.Addr
		for _, addr := range a {
			ip, err := netip.ParsePrefix(addr.String())
			if err != nil {
				errs = append(errs, fmt.Errorf("error parsing local ip %s for interface %s: %w", addr.String(), iface.Name, err))
				continue
			}
			ips = append(ips, ip.Addr())
		}
		addrs = append(addrs, pickAddresses(iface.Name, ips)...)
	}
	return addrs, errors.Join(errs...)
}

// pickAddresses chooses the best IPv4 and IPv6 address from ips.
func pickAddresses(iface string, ips []netip.Addr) []NamedAddress {
	var v4, v6 netip.Addr
	for _, ip := range ips {
		ip = ip.Unmap()
		best := &v6
		if ip.Is4() {
			best = &v4
		}
		if !best.IsValid() || addressRank(ip) < addressRank(*best) {
			*best = ip
		}
	}
	var picked []NamedAddress
	for _, ip := range []netip.Addr{v4, v6} {
		if ip.IsValid() {
			picked = append(picked, NamedAddress{Interface: iface, Addr: ip})
		}
	}
	return picked
}

// addressRank orders addresses by how suitable they are for a DNS record; lower is better.
func addressRank(ip netip.Addr) int {
	switch {
	case !ip.IsGlobalUnicast():
		return 2
	case ip.IsPrivate():
		return 1
	default:
		return 0
	}
}

// DefaultInterface returns the name of the interface that carries the default IPv4 route.
//
// No packets are sent;
// the kernel is asked which source address it would use for a public destination.
func DefaultInterface() (string, error) {
	conn, err := net.Dial("udp4", "192.0.2.1:53")
	if err != nil {
		return "", fmt.Errorf("error finding default route: %w", err)
	}
	defer conn.Close()
	local, err := netip.ParseAddrPort(conn.LocalAddr().String())
	if err != nil {
		return "", fmt.Errorf("error parsing local address: %w", err)
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("error listing interfaces: %w", err)
	}
	for _, iface := range ifaces {
		a, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range a {
			ip, err := netip.ParsePrefix(addr.String())
			if err == nil && ip.Addr().Unmap() == local.Addr().Unmap() {
				return iface.Name, nil
			}
		}
	}
	return "", fmt.Errorf("no interface owns the default source address %s", local.Addr())
}
