package tor

import (
	"encoding/binary"
	"io"
	"net"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// socksRequest 假 SOCKS5 服务端收到的一次请求
type socksRequest struct {
	Target   string
	User     string
	Password string
}

// fakeSOCKS 进程内 SOCKS5 服务端，只支持 CONNECT
//
// 握手完成后向客户端写入 "hello" 并关闭连接。
type fakeSOCKS struct {
	ln net.Listener

	mu       sync.Mutex
	requests []socksRequest
}

func newFakeSOCKS(t *testing.T) *fakeSOCKS {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeSOCKS{ln: ln}
	t.Cleanup(func() { ln.Close() })
	go s.serve()
	return s
}

func (s *fakeSOCKS) Addr() string {
	return s.ln.Addr().String()
}

func (s *fakeSOCKS) Requests() []socksRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]socksRequest(nil), s.requests...)
}

func (s *fakeSOCKS) serve() {
	for {
		c, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(c)
	}
}

func (s *fakeSOCKS) handle(c net.Conn) {
	defer c.Close()

	var req socksRequest

	// 问候：VER NMETHODS METHODS...
	hdr := make([]byte, 2)
	if _, err := io.ReadFull(c, hdr); err != nil || hdr[0] != 0x05 {
		return
	}
	methods := make([]byte, hdr[1])
	if _, err := io.ReadFull(c, methods); err != nil {
		return
	}
	method := byte(0x00)
	for _, m := range methods {
		if m == 0x02 {
			method = 0x02
		}
	}
	if _, err := c.Write([]byte{0x05, method}); err != nil {
		return
	}

	// 用户名/密码子协商
	if method == 0x02 {
		ver := make([]byte, 2)
		if _, err := io.ReadFull(c, ver); err != nil {
			return
		}
		user := make([]byte, ver[1])
		if _, err := io.ReadFull(c, user); err != nil {
			return
		}
		plen := make([]byte, 1)
		if _, err := io.ReadFull(c, plen); err != nil {
			return
		}
		pass := make([]byte, plen[0])
		if _, err := io.ReadFull(c, pass); err != nil {
			return
		}
		req.User, req.Password = string(user), string(pass)
		if _, err := c.Write([]byte{0x01, 0x00}); err != nil {
			return
		}
	}

	// 请求：VER CMD RSV ATYP DST.ADDR DST.PORT
	head := make([]byte, 4)
	if _, err := io.ReadFull(c, head); err != nil || head[1] != 0x01 {
		return
	}
	var host string
	switch head[3] {
	case 0x01:
		ip := make([]byte, 4)
		if _, err := io.ReadFull(c, ip); err != nil {
			return
		}
		host = net.IP(ip).String()
	case 0x03:
		l := make([]byte, 1)
		if _, err := io.ReadFull(c, l); err != nil {
			return
		}
		name := make([]byte, l[0])
		if _, err := io.ReadFull(c, name); err != nil {
			return
		}
		host = string(name)
	case 0x04:
		ip := make([]byte, 16)
		if _, err := io.ReadFull(c, ip); err != nil {
			return
		}
		host = net.IP(ip).String()
	default:
		return
	}
	portBuf := make([]byte, 2)
	if _, err := io.ReadFull(c, portBuf); err != nil {
		return
	}
	req.Target = net.JoinHostPort(host, strconv.Itoa(int(binary.BigEndian.Uint16(portBuf))))

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	// 成功应答，绑定地址 0.0.0.0:0
	if _, err := c.Write([]byte{0x05, 0x00, 0x00, 0x01, 0, 0, 0, 0, 0, 0}); err != nil {
		return
	}
	_, _ = c.Write([]byte("hello"))
}
