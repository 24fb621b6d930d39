package probe

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer answers every connection on its own goroutine, echoing the
// requested path into the status line.
func fakeServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				line, err := bufio.NewReader(conn).ReadString('\n')
				if err != nil {
					return
				}
				fields := strings.Fields(line)
				if len(fields) < 2 {
					return
				}
				if fields[1] == "/slow" {
					time.Sleep(100 * time.Millisecond)
				}
				_, _ = conn.Write([]byte("HTTP/1.1 200 " + fields[1] + "\rContent-Length: 2\r\n\r\nok"))
			}()
		}
	}()
	return ln.Addr().String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	addr := fakeServer(t)
	paths := []string{"/slow", "/", "/a", "/b"}

	results, err := Run(context.Background(), addr, paths, 0)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		assert.Equal(t, "HTTP/1.1 200 "+paths[i], res.Status)
		assert.Positive(t, res.Bytes)
	}
	assert.GreaterOrEqual(t, results[0].Latency, 100*time.Millisecond)
	assert.Less(t, results[1].Latency, 100*time.Millisecond)
}

func TestRun_DialFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Run(context.Background(), addr, []string{"/"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request /")
}

func TestRequest_Deadline(t *testing.T) {
	t.Parallel()

	addr := fakeServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Request(ctx, addr, "/slow")
	assert.Error(t, err)
}

func TestStatusLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HTTP/1.1 404 NOT FOUND", statusLine([]byte("HTTP/1.1 404 NOT FOUND\rContent-Length: 0\r\n\r\n")))
	assert.Equal(t, "garbage", statusLine([]byte("garbage")))
}
