// Command hillclimb reads an elevation map and prints the fewest moves from
// 'S' to 'E' (part 1) and from the best 'a' cell to 'E' (part 2).
//
// Usage:
//
//	hillclimb [--config FILE] [--path] [--render] [--max-expansions N] [--log-level L] [INPUT]
//
// INPUT is a file path; when absent or "-", the map is read from standard
// input. Configuration is loaded from a JSON file (default hillclimb.json,
// or HILLCLIMB_CONFIG); flags and HILLCLIMB_* environment variables override
// it. A .env file in the working directory is loaded first.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Flag names.
const (
	flagConfig        = "config"
	flagPath          = "path"
	flagRender        = "render"
	flagMaxExpansions = "max-expansions"
	flagLogLevel      = "log-level"
)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command with explicit streams and logs any failure.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log := newLogger(stderr)
	cmd := newCommand(&log, stdin)
	cmd.Writer = stdout
	cmd.ErrWriter = stderr
	if err := cmd.Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("hillclimb failed")
		return err
	}
	return nil
}

func newCommand(log *zerolog.Logger, stdin io.Reader) *cli.Command {
	return &cli.Command{
		Name:      "hillclimb",
		Usage:     "fewest moves up an elevation map",
		ArgsUsage: "[INPUT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Value:   defaultConfigPath,
				Usage:   "path to a JSON config file; missing file means defaults",
				Sources: cli.EnvVars("HILLCLIMB_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    flagPath,
				Usage:   "print the route as coordinates",
				Sources: cli.EnvVars("HILLCLIMB_PATH"),
			},
			&cli.BoolFlag{
				Name:    flagRender,
				Usage:   "draw the route over the map",
				Sources: cli.EnvVars("HILLCLIMB_RENDER"),
			},
			&cli.IntFlag{
				Name:    flagMaxExpansions,
				Usage:   "stop a search after N expanded cells (0 = no limit)",
				Sources: cli.EnvVars("HILLCLIMB_MAX_EXPANSIONS"),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level: debug, info, warn, error, disabled",
				Sources: cli.EnvVars("HILLCLIMB_LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
			*log = log.Level(lvl)

			g, err := readGrid(cmd.Args().First(), stdin)
			if err != nil {
				return err
			}
			log.Debug().
				Int("rows", g.Height()).
				Int("cols", g.Width()).
				Stringer("start", g.Start()).
				Stringer("end", g.End()).
				Msg("map parsed")

			return solve(ctx, *log, cmd.Root().Writer, g, cfg)
		},
	}
}

// resolveConfig merges the config file with any flag or env override.
func resolveConfig(cmd *cli.Command) (appConfig, error) {
	cfg, err := loadConfig(cmd.String(flagConfig))
	if err != nil {
		return appConfig{}, err
	}
	if cmd.IsSet(flagPath) {
		cfg.ShowPath = cmd.Bool(flagPath)
	}
	if cmd.IsSet(flagRender) {
		cfg.Render = cmd.Bool(flagRender)
	}
	if cmd.IsSet(flagMaxExpansions) {
		cfg.MaxExpansions = int(cmd.Int(flagMaxExpansions))
	}
	if cmd.IsSet(flagLogLevel) {
		cfg.LogLevel = cmd.String(flagLogLevel)
	}
	return cfg, cfg.validate()
}

// readGrid parses the map from path, or from stdin when path is "" or "-".
func readGrid(path string, stdin io.Reader) (*heightmap.Grid, error) {
	if path == "" || path == "-" {
		return heightmap.ParseReader(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	g, err := heightmap.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// solve runs both searches and prints their answers to w.
func solve(ctx context.Context, log zerolog.Logger, w io.Writer, g *heightmap.Grid, cfg appConfig) error {
	opts := []climb.Option{
		climb.WithContext(ctx),
		climb.WithMaxExpansions(cfg.MaxExpansions),
	}
	if cfg.ShowPath || cfg.Render {
		opts = append(opts, climb.WithReturnPath())
	}

	part1, err := climb.ShortestPath(g, g.Start(), g.End(), opts...)
	if err != nil {
		return fmt.Errorf("part1: %w", err)
	}
	log.Info().Stringer("status", part1.Status).Int("steps", part1.Steps).Int("expanded", part1.Expanded).Msg("part1 done")
	if err := report(w, "part1", g, part1, cfg); err != nil {
		return err
	}

	part2, err := climb.FewestStepsFromLowest(g, g.End(), opts...)
	if err != nil {
		return fmt.Errorf("part2: %w", err)
	}
	log.Info().Stringer("status", part2.Status).Int("steps", part2.Steps).Stringer("from", part2.Start).Int("expanded", part2.Expanded).Msg("part2 done")
	return report(w, "part2", g, part2, cfg)
}

// report prints one answer, plus the route when configured.
func report(w io.Writer, label string, g *heightmap.Grid, res climb.Result, cfg appConfig) error {
	if !res.Reachable() {
		_, err := fmt.Fprintf(w, "%s: no path\n", label)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: %d\n", label, res.Steps); err != nil {
		return err
	}
	if cfg.ShowPath {
		parts := make([]string, len(res.Path))
		for i, c := range res.Path {
			parts[i] = c.String()
		}
		if _, err := fmt.Fprintf(w, "path: %s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	if cfg.Render {
		out, err := climb.RenderPath(g, res.Path)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
