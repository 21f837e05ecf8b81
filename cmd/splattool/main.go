// splattool is a CLI utility for inspecting Gaussian splat PLY files.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lgingerich/gsplat-viewer/internal/config"
	"github.com/lgingerich/gsplat-viewer/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	logger.Debug("config loaded", zap.Any("config", cfg))

	command := args[0]
	args = args[1:]

	var cmdErr error
	switch command {
	case "info":
		cmdErr = cmdInfo(cfg, args)
	case "dump":
		cmdErr = cmdDump(cfg, args)
	case "vertices", "export":
		cmdErr = cmdVertices(cfg, args)
	case "hist", "histogram":
		cmdErr = cmdHist(cfg, args)
	case "config":
		cmdErr = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		if errors.Is(cmdErr, errUsage) {
			os.Exit(1)
		}
		logger.Error("command failed", zap.String("command", command), zap.Error(cmdErr))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`splattool - Gaussian splat PLY inspection utility

Usage:
  splattool [global flags] <command> [options]

Global flags:
  -config <path>      Config file (default ./splattool.yaml)
  -debug              Enable debug logging
  -log-file <path>    Also write logs to a rotating file
  -log-format <fmt>   console or json
  -workers <n>        Goroutines for the field transform
  -bins <n>           Histogram bin count

Commands:
  info <file.ply>                       Show header, bounds and attribute summary
  dump <file.ply> [-start i] [-n N]     Print decoded records
  vertices <file.ply> [-o out] [-rgb]   Export point vertices as CSV
  hist <file.ply> <field> [-o out.png]  Plot an attribute histogram
  config init [-o path]                 Write the effective config to a file

Examples:
  splattool info scene.ply
  splattool dump -start 100 -n 5 scene.ply
  splattool vertices -rgb -o points.csv scene.ply
  splattool -bins 100 hist scene.ply opacity
  splattool -workers 4 config init -o splattool.yaml`)
}
