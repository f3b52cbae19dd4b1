package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"infoflow/internal/model"
	"infoflow/internal/runner"
	"infoflow/internal/sim"
	"infoflow/internal/stats"
	"infoflow/internal/storage"
	flowapi "infoflow/pkg/infoflow"
)

const version = "0.1.0"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "trace":
		return runTrace(ctx, args[1:])
	case "target":
		return runTarget(ctx, args[1:])
	case "preset":
		return runPreset(ctx, args[1:])
	case "version":
		fmt.Println(version)
		return nil
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: infoflowctl <run|trace|target|preset|version> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (json or yaml) overlaid onto defaults")
	presetName := fs.String("preset", "", "load base config from a stored preset")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "infoflow.db", "sqlite database path")
	steps := fs.Int("steps", 0, "step count override (default: config n_steps)")
	seed := fs.Int64("seed", 0, "random seed override")
	states := fs.Int("states", 0, "state count override")
	temp := fs.Float64("temp", 0, "temperature override")
	logEvery := fs.Int("log-every", 100, "print a status line every N steps (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := resolveConfig(ctx, *configPath, *presetName, *storeKind, *dbPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.RandomSeed = *seed
		case "states":
			cfg.NStates = *states
		case "temp":
			cfg.Temperature = *temp
		}
	})

	runSteps := cfg.NSteps
	if *steps > 0 {
		runSteps = *steps
	}

	simulator, err := sim.New(cfg)
	if err != nil {
		return err
	}

	var obs runner.Observer
	if *logEvery > 0 {
		every := *logEvery
		obs = func(t int, r sim.Result) {
			if (t+1)%every == 0 || t == runSteps-1 {
				fmt.Printf("step %d/%d alpha=%.2f beta=%.1f H=%.2f KL=%.2f\n",
					t+1, runSteps, r.Alpha, r.Beta, r.Entropy, r.KLDivergence)
			}
		}
	}

	series, err := runner.Run(ctx, simulator, runSteps, obs)
	if err != nil {
		return err
	}
	summary, err := stats.Summarize(series)
	if err != nil {
		return err
	}
	fmt.Printf("completed steps=%d final_H=%.4f final_KL=%.4f mean_H=%.4f mean_KL=%.4f\n",
		summary.Steps, summary.FinalEntropy, summary.FinalKL, summary.MeanEntropy, summary.MeanKL)
	return nil
}

func runTrace(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (json or yaml) overlaid onto defaults")
	steps := fs.Int("steps", 0, "step count override (default: config n_steps)")
	outPath := fs.String("out", "", "write CSV to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := sim.Default()
	if *configPath != "" {
		var err error
		cfg, err = loadConfigFile(*configPath, cfg)
		if err != nil {
			return err
		}
	}
	runSteps := cfg.NSteps
	if *steps > 0 {
		runSteps = *steps
	}

	simulator, err := sim.New(cfg)
	if err != nil {
		return err
	}
	series, err := runner.Run(ctx, simulator, runSteps, nil)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return stats.WriteTraceCSV(w, series)
}

func runTarget(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("target", flag.ContinueOnError)
	states := fs.Int("states", sim.Default().NStates, "state count")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *states <= 0 {
		return fmt.Errorf("states must be positive, got %d", *states)
	}
	for i, p := range sim.NewAttractor(*states) {
		fmt.Printf("%d %.9f\n", i, p)
	}
	return nil
}

func runPreset(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing preset subcommand: save|show|list|delete")
	}

	switch args[0] {
	case "save":
		return runPresetSave(ctx, args[1:])
	case "show":
		return runPresetShow(ctx, args[1:])
	case "list":
		return runPresetList(ctx, args[1:])
	case "delete":
		return runPresetDelete(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown preset subcommand: %s", args[0]))
	}
}

func runPresetSave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset save", flag.ContinueOnError)
	name := fs.String("name", "", "preset name")
	configPath := fs.String("config", "", "config file (json or yaml) overlaid onto defaults")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "infoflow.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := sim.Default()
	if *configPath != "" {
		var err error
		cfg, err = loadConfigFile(*configPath, cfg)
		if err != nil {
			return err
		}
	}

	client, err := flowapi.NewClient(flowapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.SavePreset(ctx, *name, cfg); err != nil {
		return err
	}
	fmt.Printf("saved preset %s\n", *name)
	return nil
}

func runPresetShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset show", flag.ContinueOnError)
	name := fs.String("name", "", "preset name")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "infoflow.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return usageError("preset show requires -name")
	}

	client, err := flowapi.NewClient(flowapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	cfg, err := client.LoadPreset(ctx, *name)
	if err != nil {
		return err
	}
	return stats.WriteRunConfigJSON(os.Stdout, cfg)
}

func runPresetList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset list", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "infoflow.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := flowapi.NewClient(flowapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	presets, err := client.ListPresets(ctx)
	if err != nil {
		return err
	}
	for _, preset := range presets {
		fmt.Printf("%s states=%d steps=%d dt=%g temp=%g seed=%d\n",
			preset.Name, preset.Config.NStates, preset.Config.NSteps,
			preset.Config.DT, preset.Config.Temperature, preset.Config.RandomSeed)
	}
	return nil
}

func runPresetDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset delete", flag.ContinueOnError)
	name := fs.String("name", "", "preset name")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "infoflow.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return usageError("preset delete requires -name")
	}

	client, err := flowapi.NewClient(flowapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.DeletePreset(ctx, *name); err != nil {
		return err
	}
	fmt.Printf("deleted preset %s\n", *name)
	return nil
}

func resolveConfig(ctx context.Context, configPath, presetName, storeKind, dbPath string) (model.SimConfig, error) {
	cfg := sim.Default()

	if presetName != "" {
		client, err := flowapi.NewClient(flowapi.Options{StoreKind: storeKind, DBPath: dbPath})
		if err != nil {
			return model.SimConfig{}, err
		}
		defer func() {
			_ = client.Close()
		}()
		cfg, err = client.LoadPreset(ctx, presetName)
		if err != nil {
			return model.SimConfig{}, err
		}
	}

	if configPath != "" {
		var err error
		cfg, err = loadConfigFile(configPath, cfg)
		if err != nil {
			return model.SimConfig{}, err
		}
	}
	return cfg, nil
}
