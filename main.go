package main

import (
	"fmt"
	"net/http"
	"os"
	"slices"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"

	"heapvis/internal/config"
	"heapvis/internal/core"
	"heapvis/internal/web"
)

func main() {
	var configFilePath = pflag.String("config-file", "./config.toml", "path to config file")
	var address = pflag.String("address", "", "web interface address (default 127.0.0.1:8003)")
	var debug = pflag.Bool("debug", false, "enable debug mode and pprof routes")

	var profiling = pflag.Bool("profile", false, "enable profiling for CPU and Memory")
	var profileCpu = pflag.Bool("profile-cpu", false, "enable CPU profiling only")
	var profileMem = pflag.Bool("profile-memory", false, "enable Memory profiling only")

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		pflag.Usage()
		fmt.Println("\nNote: extra options will override config file, but won't change config file.")
		return
	}

	pflag.Parse()

	if *profileCpu || *profileMem || *profiling {
		var opt = make([]func(*profile.Profile), 0, 2)
		if *profileCpu || *profiling {
			opt = append(opt, profile.CPUProfile)
		}
		if *profileMem || *profiling {
			opt = append(opt, profile.MemProfile)
		}
		defer profile.Start(opt...).Stop()
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.LoadFromFile(*configFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if *address != "" {
		cfg.App.Address = *address
	}

	app := core.New(cfg)
	defer app.Close()

	server := web.New(app, cfg.App.Token, *debug)

	log.Info().Msgf("heap visualizer listening on http://%s (docs at /docs/)", cfg.App.Address)
	err = http.ListenAndServe(cfg.App.Address, server)
	if err != nil {
		log.Fatal().Err(err).Msg("web server stopped")
	}
}
