package handler

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics"
	"gitlab.ozon.dev/safariproxd/dispatcher/pkg/cache"
)

const (
	StatusOK       = "HTTP/1.1 200 OK"
	StatusNotFound = "HTTP/1.1 404 NOT FOUND"

	DefaultResource  = "hello.html"
	NotFoundResource = "404.html"

	RootRequest  = "GET / HTTP/1.1"
	SleepRequest = "GET /sleep HTTP/1.1"

	DefaultSleepDelay  = 5 * time.Second
	DefaultReadTimeout = 10 * time.Second

	// MaxRequestLineBytes bounds how much of a connection is read while
	// looking for the request line terminator.
	MaxRequestLineBytes = 8 << 10
)

var ErrRequestLineTooLong = errors.New("request line too long")

type Route struct {
	Status   string
	Resource string
	Delay    time.Duration
}

type Config struct {
	SleepDelay  time.Duration
	ReadTimeout time.Duration
	Cache       cache.Config
}

// Handler answers a single request line with a canned resource.
type Handler struct {
	resources   fs.FS
	cache       *cache.LRUCache[string, []byte]
	routes      map[string]Route
	fallback    Route
	readTimeout time.Duration
	sleep       func(time.Duration)
	metrics     metrics.Provider
	logger      *slog.Logger
}

type Option func(*Handler)

func WithMetrics(m metrics.Provider) Option {
	return func(h *Handler) {
		if m != nil {
			h.metrics = m
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

func WithSleep(sleep func(time.Duration)) Option {
	return func(h *Handler) {
		if sleep != nil {
			h.sleep = sleep
		}
	}
}

func New(resources fs.FS, cfg Config, opts ...Option) *Handler {
	if cfg.SleepDelay <= 0 {
		cfg.SleepDelay = DefaultSleepDelay
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	h := &Handler{
		resources: resources,
		cache:     cache.New[string, []byte](cfg.Cache),
		routes: map[string]Route{
			RootRequest:  {Status: StatusOK, Resource: DefaultResource},
			SleepRequest: {Status: StatusOK, Resource: DefaultResource, Delay: cfg.SleepDelay},
		},
		fallback:    Route{Status: StatusNotFound, Resource: NotFoundResource},
		readTimeout: cfg.ReadTimeout,
		sleep:       time.Sleep,
		metrics:     metrics.NewNoOpProvider(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Route matches the request line literally.
func (h *Handler) Route(requestLine string) Route {
	if r, ok := h.routes[requestLine]; ok {
		return r
	}
	return h.fallback
}

// Handle reads one request line from rw and writes the routed response.
func (h *Handler) Handle(rw io.ReadWriter) (string, error) {
	line, err := readRequestLine(rw)
	if err != nil {
		return "", err
	}

	route := h.Route(line)
	if route.Delay > 0 {
		h.sleep(route.Delay)
	}

	body, err := h.load(route.Resource)
	if err != nil {
		return route.Status, err
	}

	if _, err := rw.Write(FormatResponse(route.Status, body)); err != nil {
		return route.Status, errors.Wrap(err, "write response")
	}
	return route.Status, nil
}

// ServeConn handles conn and closes it. Errors are logged, never propagated.
// A peer that sends no request line within the read timeout is dropped.
func (h *Handler) ServeConn(conn net.Conn) {
	start := time.Now()
	defer func() {
		if err := conn.Close(); err != nil {
			h.logger.Debug("connection close failed", "remote", conn.RemoteAddr().String(), "error", err)
		}
	}()

	if err := conn.SetReadDeadline(start.Add(h.readTimeout)); err != nil {
		h.logger.Debug("set read deadline failed", "remote", conn.RemoteAddr().String(), "error", err)
	}

	status, err := h.Handle(conn)
	if err != nil {
		h.logger.Warn("connection handling failed", "remote", conn.RemoteAddr().String(), "error", err)
		status = "error"
	}
	h.metrics.RecordResponse(status, time.Since(start).Seconds())
}

// FormatResponse frames body behind the status line. The bare carriage return
// after the status line is part of the wire format clients of this server expect.
func FormatResponse(status string, body []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(status) + len(body) + 32)
	b.WriteString(status)
	b.WriteString("\rContent-Length: ")
	b.WriteString(strconv.Itoa(len(body)))
	b.WriteString("\r\n\r\n")
	b.Write(body)
	return b.Bytes()
}

func (h *Handler) load(name string) ([]byte, error) {
	body, hit, err := h.cache.GetOrLoad(name, func() ([]byte, error) {
		return fs.ReadFile(h.resources, name)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read resource %q", name)
	}

	if hit {
		h.metrics.RecordCacheHit("hit")
	} else {
		h.metrics.RecordCacheHit("miss")
		h.metrics.UpdateCacheMetrics(h.cache.Size())
	}
	return body, nil
}

func readRequestLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(io.LimitReader(r, MaxRequestLineBytes)).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", errors.Wrap(err, "read request line")
		}
		if len(line) >= MaxRequestLineBytes {
			return "", errors.Wrapf(ErrRequestLineTooLong, "read request line (%d bytes)", len(line))
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (h *Handler) GetCacheStats() map[string]int {
	return map[string]int{"resources": h.cache.Size()}
}

func (h *Handler) ClearCache() {
	h.cache.Clear()
	h.metrics.UpdateCacheMetrics(0)
}

func (h *Handler) CleanupExpired() {
	h.cache.CleanupExpired()
	h.metrics.UpdateCacheMetrics(h.cache.Size())
}
