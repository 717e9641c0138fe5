package fetchproxy

import (
	"net/netip"
	"testing"
)

func TestIsPublicAddr(t *testing.T) {
	tests := []struct {
		name   string
		ip     string
		public bool
	}{
		{name: "IPv4 loopback", ip: "127.0.0.1"},
		{name: "IPv6 loopback", ip: "::1"},
		{name: "10.x.x.x", ip: "10.0.0.1"},
		{name: "172.16.x.x", ip: "172.16.0.1"},
		{name: "192.168.x.x", ip: "192.168.1.1"},
		{name: "link-local IPv4", ip: "169.254.1.1"},
		{name: "link-local IPv6", ip: "fe80::1"},
		{name: "cloud metadata", ip: "169.254.169.254"},
		{name: "carrier-grade NAT", ip: "100.64.0.1"},
		{name: "TEST-NET-1", ip: "192.0.2.1"},
		{name: "TEST-NET-3", ip: "203.0.113.1"},
		{name: "benchmarking", ip: "198.19.255.254"},
		{name: "class E reserved", ip: "240.0.0.1"},
		{name: "unspecified IPv4", ip: "0.0.0.0"},
		{name: "unspecified IPv6", ip: "::"},
		{name: "mapped loopback", ip: "::ffff:127.0.0.1"},
		{name: "mapped metadata", ip: "::ffff:169.254.169.254"},

		{name: "mapped public", ip: "::ffff:8.8.8.8", public: true},
		{name: "Google DNS", ip: "8.8.8.8", public: true},
		{name: "Cloudflare DNS", ip: "1.1.1.1", public: true},
		{name: "public IPv6", ip: "2606:4700:4700::1111", public: true},
		{name: "just below CGN", ip: "100.63.255.255", public: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := netip.ParseAddr(tt.ip)
			if err != nil {
				t.Fatalf("failed to parse IP %q: %v", tt.ip, err)
			}
			if got := isPublicAddr(addr); got != tt.public {
				t.Errorf("isPublicAddr(%s) = %v, want %v", tt.ip, got, tt.public)
			}
		})
	}
}

func TestGuardAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "public address", address: "93.184.216.34:443"},
		{name: "loopback", address: "127.0.0.1:80", wantErr: true},
		{name: "private 10.x", address: "10.0.0.5:6379", wantErr: true},
		{name: "no port", address: "127.0.0.1", wantErr: true},
		{name: "IPv6 loopback", address: "[::1]:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guardAddress("tcp", tt.address, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("guardAddress(%q) error = %v, wantErr %v", tt.address, err, tt.wantErr)
			}
		})
	}
}

func TestNewDialer(t *testing.T) {
	if d := newDialer(false); d.Control != nil {
		t.Error("newDialer(false) installed an address guard")
	}
	if d := newDialer(true); d.Control == nil {
		t.Error("newDialer(true) has no address guard")
	}
}
