package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/httpparse/httpparse"
)

// zerologAdapter satisfies httpparse.Logger on top of a zerolog.Logger,
// the way curol-go-net wires zerolog into its own request-scoped logging.
type zerologAdapter struct {
	log zerolog.Logger
}

func (z zerologAdapter) Debugw(msg string, kv ...any) {
	ev := z.log.Debug()
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}

func newRunCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "run [corpus files...]",
		Short: "Feed corpus files through a parser one byte at a time and report EAGAIN/error counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuzz(kind, args)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "request", "which parser to drive: request, response, or chunksize")
	return cmd
}

func runFuzz(kind string, paths []string) error {
	runID := uuid.New()
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().Str("run_id", runID.String()).Logger()
	logger := zerologAdapter{log: zl}

	metrics := httpparse.NewMetrics("httpparse_fuzz")
	reg := prometheus.NewRegistry()
	if err := metrics.Register(reg); err != nil {
		return err
	}

	lim := httpparse.DefaultLimits()
	var agains, oks, fails int

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for n := 1; n <= len(data); n++ {
			consumed, perr := driveOne(kind, data[:n], lim)
			metrics.Observe(kind, perr)
			switch {
			case perr == nil:
				oks++
				logger.Debugw("parsed", "file", path, "prefix_len", n, "consumed", consumed)
			case isAgain(perr):
				agains++
			default:
				fails++
				logger.Debugw("terminal error", "file", path, "prefix_len", n, "err", perr.Error())
			}
		}
	}

	fmt.Printf("run_id=%s ok=%d again=%d fail=%d\n", runID, oks, agains, fails)
	return nil
}

func isAgain(err error) bool {
	perr, ok := err.(*httpparse.Error)
	return ok && perr.Kind == httpparse.KindAgain
}

func driveOne(kind string, buf []byte, lim httpparse.Limits) (int, error) {
	switch kind {
	case "response":
		var resp httpparse.Response
		hdr := httpparse.NewHeader()
		return httpparse.Response(buf, lim, &resp, hdr)
	case "chunksize":
		var ext httpparse.Extensions
		size, n, err := httpparse.ChunkSize(buf, lim, &ext)
		_ = size
		return n, err
	default:
		var req httpparse.Request
		hdr := httpparse.NewHeader()
		return httpparse.Request(buf, lim, &req, hdr)
	}
}
