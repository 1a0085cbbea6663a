// go-gencxxinfos distills the classes of a C++ declarations dump (gccxml)
// and prints every member callable with its derived properties.
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
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("go-gencxxinfos failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("go-gencxxinfos", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath   = fs.String("config", "", "path to a TOML config file")
		fname     = fs.String("fname", "", "path to the declarations dump")
		distiller = fs.String("distiller", "", "name of the distiller ("+strings.Join(cxxtypes.Distillers(), "|")+")")
		format    = fs.String("format", "", "output format (text|json)")
		classes   = fs.String("classes", "", "comma separated glob patterns of the classes to print")
		verbose   = fs.Bool("v", false, "enable verbose logging")
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
		case "distiller":
			cfg.Distiller = *distiller
		case "format":
			cfg.Format = *format
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
		return fmt.Errorf("go-gencxxinfos: no input file")
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

	recs := cxxtypes.DeclRecords(reg, keep)
	logger.Info("distilled declarations",
		"input", cfg.Input,
		"distiller", cfg.Distiller,
		"scopes", len(reg.Scopes()),
		"callables", len(recs),
	)

	switch cfg.Format {
	case "json":
		return cxxtypes.SaveDecls(stdout, recs)
	default:
		return printDecls(stdout, recs)
	}
}

func printDecls(w io.Writer, recs []cxxtypes.DeclRecord) error {
	for _, rec := range recs {
		_, err := fmt.Fprintf(w, "%s\n\taccess=%s virtuality=%q cc=%q\n\ttype=%q\n",
			rec.Signature, rec.Access, rec.Virtuality, rec.CallingConvention,
			rec.FunctionType,
		)
		if err != nil {
			return err
		}
		if rec.Symbol != "" {
			if _, err := fmt.Fprintf(w, "\tsymbol=%q\n", rec.Symbol); err != nil {
				return err
			}
		}
	}
	return nil
}

// EOF
