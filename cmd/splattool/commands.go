package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/lgingerich/gsplat-viewer/internal/config"
	"github.com/lgingerich/gsplat-viewer/internal/logger"
	"github.com/lgingerich/gsplat-viewer/internal/report"
	"github.com/lgingerich/gsplat-viewer/pkg/splat"
	"github.com/lgingerich/gsplat-viewer/pkg/splatstat"
)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// createOutput opens a file written by a command.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// errUsage marks a command invoked with missing arguments; the usage line
// has already been printed.
var errUsage = errors.New("invalid usage")

// loadSplats loads path and logs how long it took.
func loadSplats(cfg *config.Config, path string) ([]splat.Splat, error) {
	start := time.Now()
	splats, err := splat.LoadWithOptions(path, cfg.LoaderOptions())
	if err != nil {
		return nil, err
	}
	logger.Named("loader").Info("loaded splats",
		zap.String("path", path),
		zap.Int("count", len(splats)),
		zap.Duration("elapsed", time.Since(start)))
	return splats, nil
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: splattool info <file.ply>")
		return errUsage
	}
	path := args[0]

	stat, err := os.Stat(path)
	if err != nil {
		return err
	}

	hdr, err := splat.ReadHeaderFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "File:     %s\n", path)
	fmt.Fprintf(stdout, "Size:     %s\n", humanize.Bytes(uint64(stat.Size())))
	fmt.Fprintf(stdout, "Format:   %s %s (%s)\n", hdr.Format, hdr.Version, hdr.Encoding())
	fmt.Fprintf(stdout, "Header:   %d bytes\n", hdr.Size)
	fmt.Fprintf(stdout, "Vertices: %s\n", humanize.Comma(int64(hdr.VertexCount)))

	splats, err := loadSplats(cfg, path)
	if err != nil {
		return err
	}

	sum := splatstat.Summarize(splats)
	fmt.Fprintln(stdout)
	if !sum.Bounds.Empty() {
		size := sum.Bounds.Size()
		fmt.Fprintf(stdout, "Bounds:   min %v\n", sum.Bounds.Min.Array())
		fmt.Fprintf(stdout, "          max %v\n", sum.Bounds.Max.Array())
		fmt.Fprintf(stdout, "          center %v\n", sum.Bounds.Center().Array())
		fmt.Fprintf(stdout, "          size %.3f x %.3f x %.3f (diagonal %.3f)\n",
			size.X, size.Y, size.Z, size.Length())
	}
	if sum.NonFinite > 0 {
		fmt.Fprintf(stdout, "Non-finite records: %s\n", humanize.Comma(int64(sum.NonFinite)))
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  %-8s %12s %12s %12s %12s\n", "field", "min", "max", "mean", "stddev")
	printField(stdout, "opacity", sum.Opacity)
	for i, s := range sum.Scale {
		printField(stdout, fmt.Sprintf("scale_%d", i), s)
	}

	if len(splats) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "First record:")
		printSplat(stdout, 0, &splats[0])
	}

	return nil
}

func printField(w io.Writer, name string, s splatstat.FieldSummary) {
	if s.Count == 0 {
		fmt.Fprintf(w, "  %-8s %12s\n", name, "-")
		return
	}
	fmt.Fprintf(w, "  %-8s %12.5g %12.5g %12.5g %12.5g\n", name, s.Min, s.Max, s.Mean, s.StdDev)
}

func printSplat(w io.Writer, index int, s *splat.Splat) {
	fmt.Fprintf(w, "[%d]\n", index)
	fmt.Fprintf(w, "  position  %v\n", s.Position)
	fmt.Fprintf(w, "  normal    %v\n", s.Normal)
	fmt.Fprintf(w, "  color_dc  %v\n", s.ColorDC)
	fmt.Fprintf(w, "  rest[0:3] %v\n", s.ColorRest[:3])
	fmt.Fprintf(w, "  opacity   %v\n", s.Opacity)
	fmt.Fprintf(w, "  scale     %v\n", s.Scale)
	fmt.Fprintf(w, "  rotation  %v\n", s.Rotation)
}

func cmdDump(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	start := fs.Int("start", 0, "Index of the first record")
	limit := fs.Int("n", cfg.Report.DumpLimit, "Number of records (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: splattool dump [-start i] [-n N] <file.ply>")
		return errUsage
	}

	splats, err := loadSplats(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	if *start < 0 || *start > len(splats) {
		return fmt.Errorf("start %d out of range [0, %d]", *start, len(splats))
	}

	end := len(splats)
	if *limit > 0 && *limit < len(splats)-*start {
		end = *start + *limit
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	for i := *start; i < end; i++ {
		printSplat(w, i, &splats[i])
	}

	if end < len(splats) {
		logger.Warn("output truncated, use -n 0 for all records",
			zap.Int("shown", end-*start),
			zap.Int("total", len(splats)))
	}
	return nil
}

func cmdVertices(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("vertices", flag.ExitOnError)
	output := fs.String("o", "", "Output CSV path (default stdout)")
	rgb := fs.Bool("rgb", false, "Convert the DC coefficient to RGB")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: splattool vertices [-o out.csv] [-rgb] <file.ply>")
		return errUsage
	}

	splats, err := loadSplats(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	if *output == "" {
		_, err := writeVertices(stdout, splats, *rgb)
		return err
	}

	f, err := createOutput(*output)
	if err != nil {
		return err
	}
	n, err := writeVertices(f, splats, *rgb)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s vertices to %s\n", humanize.Comma(int64(n)), *output)
	return nil
}

// writeVertices writes one CSV row per point vertex and returns the count.
func writeVertices(out io.Writer, splats []splat.Splat, rgb bool) (int, error) {
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "x,y,z,r,g,b")
	vertices := splat.PointVertices(splats)
	for i, v := range vertices {
		color := v.Color
		if rgb {
			color = splats[i].BaseColor()
		}
		fmt.Fprintf(w, "%g,%g,%g,%g,%g,%g\n",
			v.Position[0], v.Position[1], v.Position[2],
			color[0], color[1], color[2])
	}

	return len(vertices), w.Flush()
}

func cmdHist(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("hist", flag.ExitOnError)
	output := fs.String("o", "", "Output image path (default <field>.png)")
	bins := fs.Int("bins", cfg.Report.Bins, "Number of bins")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: splattool hist [-o out.png] [-bins N] <file.ply> <field>")
		fmt.Fprintf(os.Stderr, "Fields: %s\n", strings.Join(splatstat.Fields(), " "))
		return errUsage
	}

	field := fs.Arg(1)
	splats, err := loadSplats(cfg, fs.Arg(0))
	if err != nil {
		return err
	}

	values, err := splatstat.Values(splats, field)
	if err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = field + ".png"
	}

	width, height := cfg.Report.PlotSize()
	opts := report.Options{Bins: *bins, Width: width, Height: height}
	if err := report.WriteHistogram(path, fmt.Sprintf("%s (%s)", field, fs.Arg(0)), values, opts); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: splattool config init [-o path]")
		return errUsage
	}

	fs := flag.NewFlagSet("config init", flag.ExitOnError)
	output := fs.String("o", "", "Output path (default user config directory)")
	fs.Parse(args[1:])

	var err error
	path := *output
	if path == "" {
		path = config.UserConfigPath()
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return err
	}

	logger.Sugar.Infow("config written", "path", path)
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}
