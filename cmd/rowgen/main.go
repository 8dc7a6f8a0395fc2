// Command rowgen renders the arity-specialized row types of package row.
//
// Usage:
//
//	rowgen [-config rowgen.toml] [-out row_gen.go] [-pkg row] [-max-arity 4]
//
// Flags override values read from the config file.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/leengari/rowkit/internal/logging"
	"github.com/leengari/rowkit/internal/rowgen"
)

func main() {
	configPath := flag.String("config", "", "path to a rowgen TOML config file")
	out := flag.String("out", "", "output file (overrides config)")
	pkg := flag.String("pkg", "", "package name (overrides config)")
	maxArity := flag.Int("max-arity", 0, "largest arity to generate (overrides config)")
	flag.Parse()

	logger, closeFn := logging.SetupLogger(logging.ConfigFromEnv())
	defer closeFn()
	slog.SetDefault(logger)

	if err := run(*configPath, *out, *pkg, *maxArity); err != nil {
		slog.Error("rowgen failed", "error", err)
		closeFn()
		os.Exit(1)
	}
}

func run(configPath, out, pkg string, maxArity int) error {
	cfg := rowgen.DefaultConfig()
	if configPath != "" {
		loaded, err := rowgen.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if out != "" {
		cfg.Output = out
	}
	if pkg != "" {
		cfg.Package = pkg
	}
	if maxArity != 0 {
		cfg.MaxArity = maxArity
	}

	runID := uuid.New().String()
	gen := rowgen.NewGenerator(cfg, runID)
	gen.AddObserver(rowgen.NewLoggingObserver(slog.Default()))

	src, err := gen.Generate()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return err
	}

	slog.Info("generated rows",
		"run_id", runID,
		"package", cfg.Package,
		"output", cfg.Output,
		"max_arity", cfg.MaxArity,
		"bytes", len(src),
	)
	return nil
}
