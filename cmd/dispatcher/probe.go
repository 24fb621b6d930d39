package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/probe"
)

func newProbeCmd() *cobra.Command {
	var (
		addr        string
		paths       []string
		concurrency int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Fire concurrent request lines at a running dispatcher",
		Example: `  dispatcher probe --path /sleep --path / --path /
  dispatcher probe --addr 127.0.0.1:7878 --path /missing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			results, err := probe.Run(ctx, addr, paths, concurrency)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tSTATUS\tBYTES\tLATENCY")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Path, r.Status, r.Bytes, r.Latency.Round(time.Millisecond))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7878", "Dispatcher address")
	cmd.Flags().StringArrayVar(&paths, "path", []string{"/sleep", "/"}, "Request path, repeatable")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum requests in flight, 0 for all at once")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall probe timeout")
	return cmd
}
