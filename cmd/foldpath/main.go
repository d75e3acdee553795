// Command foldpath analyzes protein folding energy landscapes: it computes
// single-source lowest-ΔG paths with negative-cycle detection and presents
// the outcome as text summaries, diagrams, persisted runs or an HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/foldpath/bellmanford"
	"github.com/katalvlaran/foldpath/config"
	"github.com/katalvlaran/foldpath/core"
	"github.com/katalvlaran/foldpath/foldstore"
	"github.com/katalvlaran/foldpath/foldstore/postgres"
	"github.com/katalvlaran/foldpath/pdb"
	"github.com/katalvlaran/foldpath/render"
	"github.com/katalvlaran/foldpath/server"
)

// Configuration represents all the settings of one invocation.
type Configuration struct {
	Mode       string
	ConfigFile string

	PDBFile    string
	Chain      string
	StepWeight float64

	Source string
	Target string
	Label  string

	Format     string
	OutputFile string
	Width      float64
	Height     float64
	Seed       int64

	DatabaseURL string
	Addr        string
}

func main() {
	cfg := parseConfig()

	switch cfg.Mode {
	case "analyze", "pdb":
		runAnalyze(cfg)
	case "render":
		runRender(cfg)
	case "serve":
		runServe(cfg)
	default:
		log.Fatalf("unknown mode %q (want analyze, pdb, render or serve)", cfg.Mode)
	}
}

// parseConfig parses command-line flags into a Configuration.
func parseConfig() *Configuration {
	cfg := &Configuration{}

	// Mode and inputs
	flag.StringVar(&cfg.Mode, "mode", "analyze", "Run mode: analyze, pdb, render, serve")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML analysis document")
	flag.StringVar(&cfg.PDBFile, "in", "", "Path to a PDB structure file (pdb mode)")
	flag.StringVar(&cfg.Chain, "chain", "", "PDB chain identifier (default: first chain with CA atoms)")
	flag.Float64Var(&cfg.StepWeight, "step", core.DefaultStepWeight, "Uniform ΔG per backbone step, kcal/mol (pdb mode)")

	// Analysis end-points
	flag.StringVar(&cfg.Source, "source", "", "Source state (default: config/demo source, or first residue)")
	flag.StringVar(&cfg.Target, "target", "", "Target state for path reconstruction")
	flag.StringVar(&cfg.Label, "label", "", "Label attached to persisted runs")

	// Diagram options
	flag.StringVar(&cfg.Format, "format", "", "Diagram format: svg, dot, ascii, json (default svg)")
	flag.StringVar(&cfg.OutputFile, "out", "", "Diagram output file (render mode defaults to stdout)")
	flag.Float64Var(&cfg.Width, "width", render.DefaultWidth, "Diagram width")
	flag.Float64Var(&cfg.Height, "height", render.DefaultHeight, "Diagram height")
	flag.Int64Var(&cfg.Seed, "seed", render.DefaultSeed, "Layout seed (same seed, same diagram)")

	// Persistence and serving
	flag.StringVar(&cfg.DatabaseURL, "db", "", "PostgreSQL DSN for run persistence (default: $DATABASE_URL)")
	flag.StringVar(&cfg.Addr, "addr", "", "HTTP listen address for serve mode (default :8080)")

	flag.Parse()

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg
}

// input is one resolved analysis subject: the graph, its end-points, and
// the config document it came from (nil for flag or demo inputs).
type input struct {
	graph  *core.Graph
	source string
	target string
	// chain marks sequential inputs, which read best left-to-right.
	chain bool
	an    *config.Analysis
}

// loadInput materializes the graph for the requested mode: a YAML config
// document, a PDB structure file, or the built-in demo funnel.
func loadInput(cfg *Configuration) *input {
	in := &input{}

	switch {
	case cfg.ConfigFile != "":
		an, err := config.Load(cfg.ConfigFile)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		g, src, err := an.BuildGraph()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		in.graph, in.source, in.an = g, src, an
		in.target = an.Target
		in.chain = an.Graph == nil

	case cfg.Mode == "pdb":
		if cfg.PDBFile == "" {
			fmt.Println("Please provide a structure file using -in")
			flag.Usage()
			os.Exit(1)
		}
		f, err := os.Open(cfg.PDBFile)
		if err != nil {
			log.Fatalf("pdb: %v", err)
		}
		defer f.Close()

		opts := []pdb.Option{pdb.WithStepWeight(cfg.StepWeight)}
		if cfg.Chain != "" {
			opts = append(opts, pdb.WithChain(cfg.Chain))
		}
		g, seq, err := pdb.Graph(f, opts...)
		if err != nil {
			log.Fatalf("pdb: %v", err)
		}
		log.Printf("pdb: %d residues from %s", len(seq), cfg.PDBFile)
		in.graph, in.source = g, seq[0]
		in.target = seq[len(seq)-1]
		in.chain = true

	default:
		in.graph, in.source, in.target = demoGraph()
	}

	// Explicit flags win over configured or derived end-points.
	if cfg.Source != "" {
		in.source = cfg.Source
	}
	if cfg.Target != "" {
		in.target = cfg.Target
	}

	return in
}

// demoGraph is the six-state folding funnel from the package docs:
// U unfolded, A..E intermediates, F folded at −8.5 kcal/mol.
func demoGraph() (*core.Graph, string, string) {
	g, err := core.NewGraph(
		[]string{"U", "A", "B", "C", "D", "E", "F"},
		[]core.Edge{
			{From: "U", To: "A", Weight: -2.0},
			{From: "A", To: "B", Weight: -1.5},
			{From: "B", To: "C", Weight: -3.0},
			{From: "C", To: "F", Weight: -2.0},
			{From: "B", To: "D", Weight: 1.0},
			{From: "D", To: "E", Weight: -4.0},
			{From: "E", To: "F", Weight: 2.0},
		},
	)
	if err != nil {
		log.Fatalf("demo graph: %v", err)
	}

	return g, "U", "F"
}

// runAnalyze computes the analysis, prints its summary, and optionally
// persists the run and writes a diagram.
func runAnalyze(cfg *Configuration) {
	in := loadInput(cfg)
	log.Printf("analyze: %d states, %d transitions, source %s",
		in.graph.NodeCount(), in.graph.EdgeCount(), in.source)

	res, rep, err := bellmanford.Compute(in.graph, in.source)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}
	fmt.Print(render.Summary(in.graph, res, rep, in.target))

	saveRun(cfg, in, res, rep)

	if out := outputFile(cfg, in); out != "" {
		writeDiagram(cfg, in, res, rep, out)
	}
}

// runRender renders the analysis diagram to -out, or stdout when no
// output file is configured.
func runRender(cfg *Configuration) {
	in := loadInput(cfg)

	res, rep, err := bellmanford.Compute(in.graph, in.source)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	writeDiagram(cfg, in, res, rep, outputFile(cfg, in))
}

// outputFile resolves the diagram destination: the -out flag, else the
// config document's render.out, else empty.
func outputFile(cfg *Configuration, in *input) string {
	if cfg.OutputFile != "" {
		return cfg.OutputFile
	}
	if in.an != nil {
		return in.an.Render.Out
	}

	return ""
}

// writeDiagram builds the scene and renders it to out ("" = stdout).
func writeDiagram(cfg *Configuration, in *input, res *bellmanford.Result, rep *bellmanford.CycleReport, out string) {
	opts := []render.Option{
		render.WithDimensions(cfg.Width, cfg.Height),
		render.WithSeed(cfg.Seed),
	}
	if in.chain {
		opts = append(opts, render.WithLayout(render.NewChainLayout()))
	}
	format := cfg.Format
	if in.an != nil {
		opts = append(opts, in.an.RenderOptions()...)
		if format == "" {
			format = in.an.Format()
		}
	}
	if format == "" {
		format = "svg"
	}

	scene, err := render.NewScene(in.graph, res, rep, in.target, opts...)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	data, err := render.Generate(context.Background(), scene, format, opts...)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("render: %v", err)
		}

		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatalf("render: write %s: %v", out, err)
	}
	log.Printf("render: wrote %s (%d bytes, %s)", out, len(data), format)
}

// saveRun persists the analysis when a database is configured via -db,
// $DATABASE_URL or the config document.
func saveRun(cfg *Configuration, in *input, res *bellmanford.Result, rep *bellmanford.CycleReport) {
	dsn := cfg.DatabaseURL
	if dsn == "" && in.an != nil {
		dsn = in.an.Database.URL
	}
	if dsn == "" {
		return
	}
	label := cfg.Label
	if label == "" && in.an != nil {
		label = in.an.Label
	}

	ctx := context.Background()
	st, err := postgres.New(ctx, dsn)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()
	if err := st.EnsureSchema(ctx); err != nil {
		log.Fatalf("store: schema: %v", err)
	}

	run, err := st.SaveRun(ctx, foldstore.NewRun(label, in.graph, res, rep, in.target))
	if err != nil {
		log.Fatalf("store: save: %v", err)
	}
	log.Printf("store: saved run %s", run.ID)
}

// runServe starts the HTTP API, with run persistence when a database is
// configured, and shuts down gracefully on SIGINT/SIGTERM. A config
// document may supply the database URL and listen address; explicit flags
// win.
func runServe(cfg *Configuration) {
	dsn := cfg.DatabaseURL
	addr := cfg.Addr
	if cfg.ConfigFile != "" {
		an, err := config.Load(cfg.ConfigFile)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		if dsn == "" {
			dsn = an.Database.URL
		}
		if addr == "" {
			addr = an.Server.Addr
		}
	}

	var st foldstore.Store
	if dsn != "" {
		ctx := context.Background()
		pg, err := postgres.New(ctx, dsn)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("store: schema: %v", err)
		}
		st = pg
		log.Printf("store: connected")
	} else {
		log.Printf("store: no database configured, run persistence disabled")
	}

	app := server.New(st)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Printf("serve: shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("serve: shutdown: %v", err)
		}
	}()

	if addr == "" {
		addr = ":8080"
	}
	log.Printf("serve: listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
