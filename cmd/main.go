package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kevontheweb/ut61e-plus-logger/internal/config"
	"github.com/kevontheweb/ut61e-plus-logger/internal/hidport"
	"github.com/kevontheweb/ut61e-plus-logger/internal/logger"
	"github.com/kevontheweb/ut61e-plus-logger/internal/meter"
	"github.com/kevontheweb/ut61e-plus-logger/internal/poller"
	"github.com/kevontheweb/ut61e-plus-logger/internal/serialport"
	"github.com/kevontheweb/ut61e-plus-logger/internal/sim"
	"github.com/kevontheweb/ut61e-plus-logger/internal/tui"
)

func main() {
	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging, cfg.Output.Mode == "csv")
	defer log.Sync()

	source, err := openSource(cfg, log)
	if err != nil {
		log.Fatal("unable to open meter", zap.Error(err))
	}
	if closer, ok := source.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Output.Mode {
	case "csv":
		runCSV(ctx, source, cfg.Meter.PollHz)
	default:
		p := poller.New(source, cfg.Meter.PollHz, cfg.Meter.WindowSize, log)
		go p.Run(ctx)
		tui.StartApplication(p, log)
	}
}

// openSource builds the measurement source the config asks for. A
// missing device is fatal here; everything after startup retries.
func openSource(cfg *config.Config, log *zap.Logger) (poller.Source, error) {
	switch cfg.Meter.Transport {
	case "sim":
		return sim.NewSource(), nil
	case "serial":
		port, err := serialport.Open(cfg.Meter.SerialPort, log)
		if err != nil {
			return nil, err
		}
		return meter.New(port, log), nil
	default:
		port, err := hidport.Open(log)
		if err != nil {
			return nil, err
		}
		return meter.New(port, log), nil
	}
}

// runCSV prints one headerless record per reading on stdout, paced at
// the poll rate. Cycles that yield nothing print nothing.
func runCSV(ctx context.Context, source poller.Source, pollHz float64) {
	if pollHz <= 0 {
		pollHz = poller.DEFAULT_POLL_HZ
	}
	limiter := rate.NewLimiter(rate.Limit(pollHz), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		m, err := source.GetMeasurement()
		if err != nil {
			continue
		}
		fmt.Println(m.CSVRecord())
	}
}
