package addrutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIPLiteral(t *testing.T) {
	tests := []struct {
		host string
		ok   bool
	}{
		{"1.2.3.4", true},
		{"::1", true},
		{"[2001:db8::1]", true},
		{"fe80::1%eth0", true},
		{"example.org", false},
		{"abc.onion", false},
		{"", false},
		{"[]", false},
	}

	for _, tt := range tests {
		_, ok := ParseIPLiteral(tt.host)
		assert.Equal(t, tt.ok, ok, "ParseIPLiteral(%q)", tt.host)
	}
}

func TestIsIPv6Literal(t *testing.T) {
	assert.True(t, IsIPv6Literal("2001:4860:4860::8888"))
	assert.True(t, IsIPv6Literal("[::1]"))
	assert.True(t, IsIPv6Literal("::ffff:8.8.8.8"), "IPv4 映射地址仍是 IPv6 字面量")
	assert.False(t, IsIPv6Literal("8.8.8.8"))
	assert.False(t, IsIPv6Literal("example.org"))
}

func TestHostType(t *testing.T) {
	tests := []struct {
		host     string
		expected string
	}{
		{"127.0.0.1", "loopback"},
		{"::1", "loopback"},
		{"10.1.2.3", "private"},
		{"172.16.0.1", "private"},
		{"192.168.1.1", "private"},
		{"100.64.0.1", "private"},
		{"169.254.1.1", "private"},
		{"fd00::1", "private"},
		{"8.8.8.8", "public"},
		{"1.2.3.4", "public"},
		{"2001:4860:4860::8888", "public"},
		{"0.0.0.0", "unknown"},
		{"224.0.0.1", "unknown"},
		{"0.1.2.3", "unknown"},
		{"240.0.0.1", "unknown"},
		{"255.255.255.255", "unknown"},
		{"192.0.2.10", "unknown"},
		{"198.18.0.1", "unknown"},
		{"example.org", "dns"},
		{"ABC.onion", "onion"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.expected, HostType(tt.host))
		})
	}
}

func TestIsPublicHost_Mapped(t *testing.T) {
	assert.True(t, IsPublicHost("::ffff:8.8.8.8"))
	assert.False(t, IsPublicHost("::ffff:192.168.1.1"))
}

func TestIsPublicHost_Reserved(t *testing.T) {
	for _, host := range []string{"0.1.2.3", "192.0.0.8", "192.0.2.1", "192.88.99.1", "198.19.255.1", "198.51.100.7", "203.0.113.9", "240.0.0.1"} {
		assert.False(t, IsPublicHost(host), "IsPublicHost(%q)", host)
	}
	assert.True(t, IsPublicHost("198.20.0.1"))
	assert.True(t, IsPublicHost("192.0.3.1"))
}
