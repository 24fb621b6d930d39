package probe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Path    string
	Status  string
	Bytes   int
	Latency time.Duration
}

// Run requests every path concurrently, at most concurrency at a time, and
// returns results in the order of paths. The first failure cancels the rest.
func Run(ctx context.Context, addr string, paths []string, concurrency int) ([]Result, error) {
	if concurrency <= 0 {
		concurrency = len(paths)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))

	results := make([]Result, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := Request(ctx, addr, path)
			if err != nil {
				return errors.Wrapf(err, "request %s", path)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Request sends a single request line for path and reads until the server
// closes the connection.
func Request(ctx context.Context, addr, path string) (Result, error) {
	start := time.Now()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Result{}, errors.Wrap(err, "dial")
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return Result{}, errors.Wrap(err, "set deadline")
		}
	}

	if _, err := fmt.Fprintf(conn, "GET %s HTTP/1.1\r\n", path); err != nil {
		return Result{}, errors.Wrap(err, "write request")
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return Result{}, errors.Wrap(err, "read response")
	}

	return Result{
		Path:    path,
		Status:  statusLine(resp),
		Bytes:   len(resp),
		Latency: time.Since(start),
	}, nil
}

// statusLine returns everything before the first carriage return.
func statusLine(resp []byte) string {
	if i := bytes.IndexByte(resp, '\r'); i >= 0 {
		return string(resp[:i])
	}
	return string(resp)
}
