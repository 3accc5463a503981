package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ak-Army/xlog"

	"github.com/Ak-Army/dwmstatus/dwmbar"
	"github.com/Ak-Army/dwmstatus/internal/xroot"
	_ "github.com/Ak-Army/dwmstatus/modules"
)

func checkErr(err error, msg string, code int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "dwmstatus: %s: %s\n", msg, err)
		os.Exit(code)
	}
}

func sigHandler(cancel context.CancelFunc, log xlog.Logger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Infof("Received signal: %q", sig)
	cancel()
}

func main() {
	var logPath, configPath, displayName string
	flag.StringVar(&logPath, "log", "/dev/null", "Log path. Default: /dev/null")
	flag.StringVar(&logPath, "l", "/dev/null", "Log file to use. Default: /dev/null")
	flag.StringVar(&configPath, "config", "", "Config path. Default: built-in layout")
	flag.StringVar(&configPath, "c", "", "Config path (in JSON).")
	flag.StringVar(&displayName, "display", "", "X display. Default: $DISPLAY")
	flag.StringVar(&displayName, "d", "", "X display to use.")

	flag.Parse()

	logfile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	checkErr(err, "unable to open log file", 2)
	defer logfile.Close()

	log := xlog.New(xlog.Config{
		Output: xlog.NewLogfmtOutput(logfile),
	})
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Unhandled panic: %v", r)
		}
	}()
	log.Info("Start")

	store := dwmbar.NewStaticStore(dwmbar.DefaultConfig())
	if configPath != "" {
		log.Infof("Loading configuration from: %s", configPath)
		store, err = dwmbar.NewStore(configPath, log)
		checkErr(err, "unable to load config", 2)
	}

	display, err := xroot.Open(displayName)
	if err != nil {
		log.Error(err)
		fmt.Fprintln(os.Stderr, "dwmstatus: cannot open display.")
		os.Exit(1)
	}
	defer display.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sigHandler(cancel, log)

	dwmbar.NewBar(store, display, log).Run(ctx)
	log.Info("End")
}
