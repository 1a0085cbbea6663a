// go-gencxxwrapper distills the classes of a C++ declarations dump and
// generates the corresponding Go wrapper declarations
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-cxxdict/calldefs/internal/config"
	"github.com/go-cxxdict/calldefs/pkg/cxxtypes"
	_ "github.com/go-cxxdict/calldefs/pkg/cxxtypes/gccxml"
	"github.com/go-cxxdict/calldefs/pkg/wrapper"
	_ "github.com/go-cxxdict/calldefs/pkg/wrapper/plugins/cxxgo"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		slog.Error("go-gencxxwrapper failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("go-gencxxwrapper", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath = fs.String("config", "", "path to a TOML config file")
		fname   = fs.String("fname", "", "path to the declarations dump")
		pkg     = fs.String("pkg", "", "name of the generated Go package")
		header  = fs.String("header", "", "name of the C++ header declaring the classes")
		output  = fs.String("o", "", "output directory")
		classes = fs.String("classes", "", "comma separated glob patterns of the classes to wrap")
		verbose = fs.Bool("v", false, "enable verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			return err
		}
	}

	// command line flags override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fname":
			cfg.Input = *fname
		case "pkg":
			cfg.Wrapper.Package = *pkg
			cfg.Wrapper.Name = *pkg
		case "header":
			cfg.Wrapper.Header = *header
		case "o":
			cfg.Wrapper.Output = *output
		case "classes":
			cfg.Classes = strings.Split(*classes, ",")
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("go-gencxxwrapper: no input file")
	}
	if cfg.Wrapper.Package == "" {
		return fmt.Errorf("go-gencxxwrapper: no package name")
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	reg, err := cxxtypes.DistillDecls(cfg.Distiller, f)
	if err != nil {
		return err
	}
	keep, err := cfg.ClassFilter(reg)
	if err != nil {
		return err
	}

	gen := wrapper.NewGenerator(reg)
	gen.Fd.Name = cfg.Wrapper.Name
	gen.Fd.Package = cfg.Wrapper.Package
	gen.Fd.Header = cfg.Wrapper.Header
	gen.Fd.Keep = keep

	if err := gen.GenerateAllFiles(); err != nil {
		return err
	}
	if err := gen.Save(cfg.Wrapper.Output); err != nil {
		return err
	}
	logger.Info("wrapper generated",
		"plugins", gen.Plugins(),
		"files", len(gen.Fd.Files),
		"output", cfg.Wrapper.Output,
	)
	return nil
}

// EOF
