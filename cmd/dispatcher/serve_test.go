package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/handler"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/probe"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/workerpool"
)

const e2eSleepDelay = 400 * time.Millisecond

type DispatcherE2ESuite struct {
	suite.Suite

	addr      string
	adminAddr string
	cancel    context.CancelFunc
	served    chan error
}

func TestDispatcherE2ESuite(t *testing.T) {
	suite.Run(t, new(DispatcherE2ESuite))
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func (s *DispatcherE2ESuite) SetupSuite() {
	t := s.T()
	dir := t.TempDir()

	resources := filepath.Join(dir, "resources")
	s.Require().NoError(os.Mkdir(resources, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(resources, handler.DefaultResource), []byte("hello"), 0o600))
	s.Require().NoError(os.WriteFile(filepath.Join(resources, handler.NotFoundResource), []byte("nope"), 0o600))

	s.addr = freeAddr(t)
	s.adminAddr = freeAddr(t)

	cfgPath := filepath.Join(dir, "config.yaml")
	s.Require().NoError(os.WriteFile(cfgPath, []byte(fmt.Sprintf(`
server:
  address: %q
  mode: pooled
  workers: 4
resources:
  dir: %q
  sleep_delay: %s
admin:
  address: %q
shutdown_timeout: 2s
`, s.addr, resources, e2eSleepDelay, s.adminAddr)), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.served = make(chan error, 1)

	cmd := newServeCmd()
	cmd.SetArgs([]string{"--config", cfgPath})
	go func() { s.served <- cmd.ExecuteContext(ctx) }()

	for _, addr := range []string{s.addr, s.adminAddr} {
		addr := addr
		s.Require().Eventually(func() bool {
			conn, err := net.Dial("tcp", addr)
			if err != nil {
				return false
			}
			_ = conn.Close()
			return true
		}, 5*time.Second, 10*time.Millisecond)
	}
}

func (s *DispatcherE2ESuite) TearDownSuite() {
	s.cancel()
	select {
	case err := <-s.served:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("serve did not shut down")
	}
}

func (s *DispatcherE2ESuite) TestRoutes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, err := probe.Run(ctx, s.addr, []string{"/", "/missing"}, 2)
	s.Require().NoError(err)
	s.Require().Len(results, 2)

	s.Equal(handler.StatusOK, results[0].Status)
	s.Equal(len(handler.FormatResponse(handler.StatusOK, []byte("hello"))), results[0].Bytes)
	s.Equal(handler.StatusNotFound, results[1].Status)
	s.Equal(len(handler.FormatResponse(handler.StatusNotFound, []byte("nope"))), results[1].Bytes)
}

func (s *DispatcherE2ESuite) TestSleepDoesNotStallPool() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, err := probe.Run(ctx, s.addr, []string{"/sleep", "/", "/", "/"}, 0)
	s.Require().NoError(err)

	s.GreaterOrEqual(results[0].Latency, e2eSleepDelay)
	for _, r := range results[1:] {
		s.Less(r.Latency, e2eSleepDelay)
	}
}

func (s *DispatcherE2ESuite) TestAdminStats() {
	resp, err := http.Get("http://" + s.adminAddr + "/stats")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var stats workerpool.Stats
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&stats))
	s.Equal(4, stats.Size)
	s.Equal(4, stats.Alive)
	s.False(stats.Closed)
}
