package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Geun-Oh/qlog/internal/entry"
	"github.com/Geun-Oh/qlog/internal/filter"
	"github.com/Geun-Oh/qlog/internal/logger"
	"github.com/Geun-Oh/qlog/internal/monitor"
	"github.com/Geun-Oh/qlog/internal/queue"
	"github.com/Geun-Oh/qlog/internal/sink"
	"github.com/Geun-Oh/qlog/internal/source"
	"github.com/spf13/cobra"
)

var (
	filePath   string
	follow     bool
	levelName  string
	asyncMode  bool
	policyName string
	queueSize  int
	outPath    string
	noColor    bool
	keyword    string
	excludes   []string
	showStats  bool

	rootCmd = &cobra.Command{
		Use:   "qlog",
		Short: "qlog pipes lines from a source through the async logging pipeline",
		Long: `qlog reads log lines from stdin or a file, detects their severity,
and drives them through the queue-backed logging pipeline to styled
stdout and optional file sinks.`,
		RunE: run,
	}
)

func init() {
	cobra.OnInitialize()

	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "read lines from a file instead of stdin")
	rootCmd.Flags().BoolVar(&follow, "follow", false, "keep reading as the file grows")
	rootCmd.Flags().StringVarP(&levelName, "level", "l", "message", "minimum severity (message|trace|info|warn|error)")
	rootCmd.Flags().BoolVar(&asyncMode, "async", false, "drain entries on a background goroutine")
	rootCmd.Flags().StringVar(&policyName, "policy", "block", "push-when-full policy (error|overwrite|block)")
	rootCmd.Flags().IntVar(&queueSize, "queue-size", 1024, "async queue capacity")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "also append entries to this log file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.Flags().StringVarP(&keyword, "keyword", "k", "", "only log lines containing this keyword")
	rootCmd.Flags().StringArrayVar(&excludes, "exclude", nil, "drop lines containing this text (repeatable)")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print a summary when the source ends")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parsePolicy(name string) (queue.Policy, error) {
	switch name {
	case "error":
		return queue.ErrorWhenFull, nil
	case "overwrite":
		return queue.OverwriteWhenFull, nil
	case "block":
		return queue.BlockWhenFull, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want error, overwrite, or block)", name)
	}
}

func run(cmd *cobra.Command, args []string) error {
	policy, err := parsePolicy(policyName)
	if err != nil {
		return err
	}

	sinks := []sink.Sink{sink.NewStdoutSink(!noColor)}
	if outPath != "" {
		fs, err := sink.NewFileSink(outPath)
		if err != nil {
			return err
		}
		sinks = append(sinks, fs)
	}

	filters := filter.NewChain(filter.MatchAll)
	if keyword != "" {
		filters.Add(filter.NewKeywordFilter(keyword))
	}
	if len(excludes) > 0 {
		filters.Add(filter.NewExcludeFilter(excludes...))
	}

	threading := logger.SingleThreaded
	if asyncMode {
		threading = logger.SingleThreadedAsync
	}

	stats := monitor.NewStats()
	lg, err := logger.New(logger.Config{
		Threading:     threading,
		Retention:     policy,
		MinLevel:      entry.ParseLevel(levelName),
		QueueCapacity: queueSize,
		Sinks:         sinks,
		Filters:       filters,
		Stats:         stats,
	})
	if err != nil {
		return err
	}

	var src source.Source
	if filePath != "" {
		src = source.NewFileSource(filePath, follow)
	} else {
		src = source.NewStdinSource()
	}

	ch, err := src.Start(cmd.Context())
	if err != nil {
		return fmt.Errorf("start source %s: %w", src.Name(), err)
	}

	for e := range ch {
		if lvl := filter.DetectLevel(e.Text()); lvl != entry.LevelMessage {
			e = entry.New(lvl, entry.StyleFor(lvl), e.Text())
		}
		// Full-queue rejections are already counted in stats; keep reading.
		_ = lg.Log(e)
	}

	// Let the drain goroutine catch up before closing drops the remainder.
	drainWait(cmd.Context(), lg)
	if err := lg.Close(); err != nil {
		return err
	}

	if showStats {
		fmt.Println()
		fmt.Println(stats.Summary())
	}
	return nil
}

// drainWait polls until the logger's queue is empty or the context ends.
func drainWait(ctx context.Context, lg *logger.Logger) {
	for lg.Pending() > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Millisecond):
		}
	}
}
