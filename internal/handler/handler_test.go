package handler

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics/mock"
	"gitlab.ozon.dev/safariproxd/dispatcher/pkg/cache"
)

const (
	helloBody    = "<!DOCTYPE html>\n<html><body><h1>Hello!</h1></body></html>\n"
	notFoundBody = "<!DOCTYPE html>\n<html><body><h1>Oops!</h1></body></html>\n"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type conn struct {
	io.Reader
	io.Writer
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// endlessReader never yields a newline.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'a'
	}
	return len(p), nil
}

func resources() fstest.MapFS {
	return fstest.MapFS{
		DefaultResource:  {Data: []byte(helloBody)},
		NotFoundResource: {Data: []byte(notFoundBody)},
	}
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		request    string
		wantStatus string
		wantBody   string
		wantSleep  time.Duration
	}{
		{
			name:       "Root",
			request:    "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n",
			wantStatus: StatusOK,
			wantBody:   helloBody,
		},
		{
			name:       "RootWithoutCarriageReturn",
			request:    "GET / HTTP/1.1\n",
			wantStatus: StatusOK,
			wantBody:   helloBody,
		},
		{
			name:       "RootWithoutTerminator",
			request:    "GET / HTTP/1.1",
			wantStatus: StatusOK,
			wantBody:   helloBody,
		},
		{
			name:       "Sleep",
			request:    "GET /sleep HTTP/1.1\r\n",
			wantStatus: StatusOK,
			wantBody:   helloBody,
			wantSleep:  DefaultSleepDelay,
		},
		{
			name:       "UnknownPath",
			request:    "GET /missing HTTP/1.1\r\n",
			wantStatus: StatusNotFound,
			wantBody:   notFoundBody,
		},
		{
			name:       "WrongMethod",
			request:    "POST / HTTP/1.1\r\n",
			wantStatus: StatusNotFound,
			wantBody:   notFoundBody,
		},
		{
			name:       "NotExactMatch",
			request:    "GET /  HTTP/1.1\r\n",
			wantStatus: StatusNotFound,
			wantBody:   notFoundBody,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var slept time.Duration
			h := New(resources(), Config{}, WithSleep(func(d time.Duration) { slept += d }), WithLogger(quietLogger))

			var out bytes.Buffer
			status, err := h.Handle(conn{Reader: strings.NewReader(tt.request), Writer: &out})
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantSleep, slept)

			want := tt.wantStatus + "\rContent-Length: " + strconv.Itoa(len(tt.wantBody)) + "\r\n\r\n" + tt.wantBody
			assert.Equal(t, want, out.String())
		})
	}
}

func TestFormatResponse(t *testing.T) {
	t.Parallel()

	body := []byte("héllo")
	resp := string(FormatResponse(StatusOK, body))

	assert.True(t, strings.HasPrefix(resp, "HTTP/1.1 200 OK\rContent-Length: 6\r\n\r\n"))
	assert.True(t, strings.HasSuffix(resp, "héllo"))
	assert.NotContains(t, resp, "OK\r\n")
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		resources fs.FS
		in        io.Reader
		out       io.Writer
		wantErr   string
	}{
		{
			name:      "EmptyStream",
			resources: resources(),
			in:        strings.NewReader(""),
			out:       io.Discard,
			wantErr:   "read request line",
		},
		{
			name:      "MissingResource",
			resources: fstest.MapFS{},
			in:        strings.NewReader("GET / HTTP/1.1\r\n"),
			out:       io.Discard,
			wantErr:   `read resource "hello.html"`,
		},
		{
			name:      "MissingNotFoundResource",
			resources: fstest.MapFS{DefaultResource: {Data: []byte(helloBody)}},
			in:        strings.NewReader("GET /nope HTTP/1.1\r\n"),
			out:       io.Discard,
			wantErr:   `read resource "404.html"`,
		},
		{
			name:      "WriteFailure",
			resources: resources(),
			in:        strings.NewReader("GET / HTTP/1.1\r\n"),
			out:       failingWriter{},
			wantErr:   "write response",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := New(tt.resources, Config{}, WithLogger(quietLogger))
			_, err := h.Handle(conn{Reader: tt.in, Writer: tt.out})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHandler_CachesResources(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	provider := mock.NewProviderMock(ctrl)

	var lookups []string
	provider.RecordCacheHitMock.Times(2).Inspect(func(result string) {
		lookups = append(lookups, result)
	}).Return()
	provider.UpdateCacheMetricsMock.Times(2).Return()

	h := New(resources(), Config{Cache: cache.Config{MaxSize: 4}}, WithMetrics(provider), WithLogger(quietLogger))

	for i := 0; i < 2; i++ {
		_, err := h.Handle(conn{Reader: strings.NewReader(RootRequest + "\r\n"), Writer: io.Discard})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"miss", "hit"}, lookups)
	assert.Equal(t, map[string]int{"resources": 1}, h.GetCacheStats())

	h.ClearCache()
	assert.Equal(t, map[string]int{"resources": 0}, h.GetCacheStats())
}

func TestHandler_ServeConn(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	provider := mock.NewProviderMock(ctrl)
	provider.RecordCacheHitMock.Expect("miss").Return()
	provider.UpdateCacheMetricsMock.Expect(1).Return()
	provider.RecordResponseMock.ExpectStatusParam1(StatusNotFound).Return()

	h := New(resources(), Config{}, WithMetrics(provider), WithLogger(quietLogger))

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeConn(server)
	}()

	_, err := client.Write([]byte("GET /nowhere HTTP/1.1\r\n"))
	require.NoError(t, err)
	resp, err := io.ReadAll(client)
	require.NoError(t, err)
	<-done

	assert.True(t, strings.HasPrefix(string(resp), StatusNotFound+"\rContent-Length: "))
	assert.True(t, strings.HasSuffix(string(resp), notFoundBody))
}

func TestHandler_RequestLineTooLong(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   io.Reader
	}{
		{
			name: "EndlessStream",
			in:   endlessReader{},
		},
		{
			name: "OversizedLine",
			in:   strings.NewReader(strings.Repeat("a", MaxRequestLineBytes+10) + "\n"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := New(resources(), Config{}, WithLogger(quietLogger))

			var out bytes.Buffer
			_, err := h.Handle(conn{Reader: tt.in, Writer: &out})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRequestLineTooLong)
			assert.Zero(t, out.Len())
		})
	}
}

func TestHandler_ServeConnDropsSilentPeer(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	provider := mock.NewProviderMock(ctrl)
	provider.RecordResponseMock.ExpectStatusParam1("error").Return()

	h := New(resources(), Config{ReadTimeout: 50 * time.Millisecond}, WithMetrics(provider), WithLogger(quietLogger))

	client, server := net.Pipe()
	defer client.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeConn(server)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ServeConn kept waiting on a silent peer")
	}

	resp, err := io.ReadAll(client)
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestHandler_RouteUsesConfiguredDelay(t *testing.T) {
	t.Parallel()

	h := New(resources(), Config{SleepDelay: 250 * time.Millisecond})

	assert.Equal(t, 250*time.Millisecond, h.Route(SleepRequest).Delay)
	assert.Zero(t, h.Route(RootRequest).Delay)
	assert.Equal(t, Route{Status: StatusNotFound, Resource: NotFoundResource}, h.Route(""))
}
