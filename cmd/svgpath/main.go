// Command svgpath parses SVG path data and prints the flattened drawing
// instructions, optionally scaled or transformed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/vasalvit/svgpath"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("svgpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML configuration file")
		svgPath    = fs.String("svg", "", "read path elements from an SVG document")
		verbose    = fs.Bool("v", false, "debug logging on stderr")
		steps      = fs.Int("steps", svgpath.DefaultArcSteps, "segments per elliptical arc")
		output     = fs.String("output", "path", "output: commands, path or size")
		transform  = fs.String("transform", "", "SVG transform list applied to every point")
		translate  = fs.String("translate", "", "translate by X,Y")
		scale      = fs.Float64("scale", 0, "scale both axes")
		resize     = fs.String("resize", "", "resize to WxH")
		fit        = fs.String("fit", "", "fit inside WxH")
		cover      = fs.String("cover", "", "cover WxH")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	svgpath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "steps":
			cfg.Steps = *steps
		case "output":
			cfg.Output = *output
		case "transform":
			cfg.Transform = *transform
		case "translate":
			cfg.Translate, err = parsePair(*translate)
		case "scale":
			cfg.Scale = float32(*scale)
		case "resize":
			cfg.Resize, err = parseBox(*resize)
		case "fit":
			cfg.Fit, err = parseBox(*fit)
		case "cover":
			cfg.Cover, err = parseBox(*cover)
		}
	})
	if err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	var opts []svgpath.Option
	if cfg.Steps != 0 {
		opts = append(opts, svgpath.WithArcSteps(cfg.Steps))
	}

	if *svgPath != "" {
		return runDocument(*svgPath, cfg, opts, stdout)
	}

	src, err := source(fs.Args(), stdin)
	if err != nil {
		return err
	}
	p, err := svgpath.ParseShape(src, opts...)
	if err != nil {
		return describe(src, err)
	}
	if err := apply(p, cfg); err != nil {
		return err
	}
	return write(stdout, p, cfg.Output)
}

func runDocument(name string, cfg Config, opts []svgpath.Option, stdout io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := svgpath.ParseSvgFromReader(f, opts...)
	if err != nil {
		return err
	}
	for _, e := range doc.Elements {
		p := e.Path()
		if err := apply(p, cfg); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "# %s\n", e.ID)
		if err := write(stdout, p, cfg.Output); err != nil {
			return err
		}
	}
	return nil
}

func source(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// describe adds line and column context to parse errors.
func describe(src string, err error) error {
	var pe *svgpath.ParseError
	if errors.As(err, &pe) {
		return parse.NewError(strings.NewReader(src), pe.Offset, "expected %s", pe.Expected)
	}
	return err
}

func apply(p *svgpath.Path, cfg Config) error {
	if cfg.Transform != "" {
		t, err := svgpath.ParseTransform(cfg.Transform)
		if err != nil {
			return err
		}
		p.Transform(t)
	}
	if len(cfg.Translate) == 2 {
		p.Translate(cfg.Translate[0], cfg.Translate[1])
	}
	if cfg.Scale != 0 {
		p.Scale(cfg.Scale)
	}
	if cfg.Resize != nil {
		p.Resize(cfg.Resize.Width, cfg.Resize.Height)
	}
	if cfg.Fit != nil {
		p.Fit(cfg.Fit.Width, cfg.Fit.Height)
	}
	if cfg.Cover != nil {
		p.Cover(cfg.Cover.Width, cfg.Cover.Height)
	}
	return nil
}

func write(w io.Writer, p *svgpath.Path, output string) error {
	var err error
	switch output {
	case "commands":
		for _, di := range p.Instructions() {
			if _, err = fmt.Fprintln(w, di.Kind, di); err != nil {
				return err
			}
		}
	case "size":
		size := p.Size()
		_, err = fmt.Fprintln(w, number(size[0]), number(size[1]))
	default:
		_, err = fmt.Fprintln(w, svgpath.FormatPath(p.Instructions()))
	}
	return err
}

func number(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
