// Command tilepath loads or generates a tile map, runs one of the four
// searches over it and prints the result, or streams the search to browsers
// over a websocket.
//
// Usage:
//
//	tilepath -map level.txt -mode astar
//	tilepath -random 40x20 -seed 7 -mode dijkstra -trace
//	tilepath -png level.png -serve :8080 -interval 50ms
//	tilepath -schema
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/internal/viz"
	"github.com/katalvlaran/tilepath/mapdata"
	"github.com/katalvlaran/tilepath/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if code := exitCode(err); code != 0 {
		slog.Error("tilepath failed", "error", err)
		os.Exit(code)
	}
}

// exitCode maps the result of run to a process status; -h is not a failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

// config holds the parsed command line.
type config struct {
	mapPath  string
	pngPath  string
	random   string
	seed     int64
	density  float64
	conn     int
	start    string
	goal     string
	mode     string
	policy   string
	serve    string
	interval time.Duration
	schema   bool
	save     string
	trace    bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tilepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapPath, "map", "", "text (or .png) map file")
	fs.StringVar(&cfg.pngPath, "png", "", "black/white PNG map file, whatever its extension")
	fs.StringVar(&cfg.random, "random", "20x20", "generate a WxH map when no file is given")
	fs.Int64Var(&cfg.seed, "seed", 1, "random map seed")
	fs.Float64Var(&cfg.density, "density", 0.3, "random map wall density in [0,1]")
	fs.IntVar(&cfg.conn, "conn", 8, "connectivity: 8 or 4")
	fs.StringVar(&cfg.start, "start", "", "start cell x,y (default 0,0)")
	fs.StringVar(&cfg.goal, "goal", "", "goal cell x,y (default top-right corner)")
	fs.StringVar(&cfg.mode, "mode", "astar", "search mode: bfs, dijkstra, greedy or astar")
	fs.StringVar(&cfg.policy, "policy", "expansion", "goal policy: expansion, discovery or exhaustive")
	fs.StringVar(&cfg.serve, "serve", "", "serve the search as a websocket stream on this address")
	fs.DurationVar(&cfg.interval, "interval", 100*time.Millisecond, "time between streamed steps")
	fs.BoolVar(&cfg.schema, "schema", false, "print the JSON schema of streamed frames and exit")
	fs.StringVar(&cfg.save, "save", "", "write the loaded or generated map as text to this file")
	fs.BoolVar(&cfg.trace, "trace", false, "print the map after every step")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.schema {
		data, err := json.MarshalIndent(viz.Schema(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	mode, err := search.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	policy, err := search.ParseGoalPolicy(cfg.policy)
	if err != nil {
		return err
	}

	g, start, goal, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info("map ready", "width", g.Width, "height", g.Height, "walls", len(g.Walls()), "regions", len(g.ConnectedComponents()))

	if cfg.save != "" {
		if err := saveGraph(cfg.save, g); err != nil {
			return err
		}
		logger.Info("map saved", "path", cfg.save)
	}

	if cfg.serve != "" {
		return serve(ctx, cfg, g, start, goal, mode, policy, logger)
	}

	opts := []search.Option{
		search.WithContext(ctx),
		search.WithGoalPolicy(policy),
		search.WithLogger(logger),
	}
	if cfg.trace {
		opts = append(opts, search.WithOnStep(func(res search.StepResult) {
			fmt.Fprintf(stdout, "step %d: %v\n", res.Iteration, res.Current)
		}))
	}
	r, err := search.New(g, start, goal, mode, opts...)
	if err != nil {
		return err
	}

	for r.Status() == search.Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Step()
		if cfg.trace {
			if err := render(stdout, g, r.Snapshot()); err != nil {
				return err
			}
		}
	}

	res := r.PathResult()
	if !cfg.trace {
		if err := render(stdout, g, r.Snapshot()); err != nil {
			return err
		}
	}
	if !res.Found {
		fmt.Fprintf(stdout, "%s: no path from %v to %v (explored %d)\n", mode, start, goal, res.Explored)
		return nil
	}
	fmt.Fprintf(stdout, "%s: %d steps, cost %.3f, explored %d, iterations %d\n",
		mode, len(res.Path)-1, res.Cost, res.Explored, res.Iterations)
	return nil
}

// loadGraph builds the graph from -png, -map or -random, in that order, and
// resolves the endpoints.
func loadGraph(cfg config) (*gridgraph.GridGraph, gridgraph.Point, gridgraph.Point, error) {
	var none gridgraph.Point
	conn := gridgraph.Conn8
	switch cfg.conn {
	case 8:
	case 4:
		conn = gridgraph.Conn4
	default:
		return nil, none, none, fmt.Errorf("-conn must be 4 or 8, got %d", cfg.conn)
	}

	var (
		g   *gridgraph.GridGraph
		err error
	)
	switch {
	case cfg.pngPath != "":
		g, err = mapdata.LoadPNG(cfg.pngPath, conn)
	case cfg.mapPath != "":
		g, err = mapdata.Load(cfg.mapPath, conn)
	default:
		g, err = generate(cfg, conn)
	}
	if err != nil {
		return nil, none, none, err
	}

	start, err := pointOr(cfg.start, gridgraph.Point{})
	if err != nil {
		return nil, none, none, fmt.Errorf("-start: %w", err)
	}
	goal, err := pointOr(cfg.goal, gridgraph.Point{X: g.Width - 1, Y: g.Height - 1})
	if err != nil {
		return nil, none, none, fmt.Errorf("-goal: %w", err)
	}
	return g, start, goal, nil
}

func generate(cfg config, conn gridgraph.Connectivity) (*gridgraph.GridGraph, error) {
	w, h, err := parseSize(cfg.random)
	if err != nil {
		return nil, fmt.Errorf("-random: %w", err)
	}
	start, err := pointOr(cfg.start, gridgraph.Point{})
	if err != nil {
		return nil, fmt.Errorf("-start: %w", err)
	}
	goal, err := pointOr(cfg.goal, gridgraph.Point{X: w - 1, Y: h - 1})
	if err != nil {
		return nil, fmt.Errorf("-goal: %w", err)
	}

	opts := mapdata.DefaultGenOptions()
	opts.Width, opts.Height = w, h
	opts.Seed = cfg.seed
	opts.Density = cfg.density
	opts.Keep = []gridgraph.Point{start, goal}
	rows, err := mapdata.Generate(opts)
	if err != nil {
		return nil, err
	}
	return gridgraph.From2D(rows, conn)
}

func saveGraph(path string, g *gridgraph.GridGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mapdata.WriteText(f, viz.GridOf(g).Cells); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func serve(ctx context.Context, cfg config, g *gridgraph.GridGraph, start, goal gridgraph.Point,
	mode search.Mode, policy search.GoalPolicy, logger *slog.Logger) error {
	// fail fast on bad endpoints instead of on the first connection
	if _, err := search.New(g, start, goal, mode, search.WithGoalPolicy(policy)); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", viz.NewHandler(viz.HandlerConfig{
		Graph:    g,
		Start:    start,
		Goal:     goal,
		Mode:     mode,
		Policy:   policy,
		Interval: cfg.interval,
		Logger:   logger,
	}))
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/schema+json")
		if err := json.NewEncoder(w).Encode(viz.Schema()); err != nil {
			http.Error(w, "failed to encode", http.StatusInternalServerError)
		}
	})

	srv := &http.Server{Addr: cfg.serve, Handler: mux}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.serve, "mode", mode, "interval", cfg.interval)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
