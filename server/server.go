// server.go wires the Fiber application: analysis, render and run-store
// endpoints over the core engine.

package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/foldpath/bellmanford"
	"github.com/katalvlaran/foldpath/core"
	"github.com/katalvlaran/foldpath/foldstore"
	"github.com/katalvlaran/foldpath/render"
)

// New builds the HTTP API. st may be nil: the analysis and render
// endpoints stay live, while the run endpoints (and persist requests)
// answer 503.
func New(st foldstore.Store) *fiber.App {
	app := fiber.New()

	// ── Health ────────────────────────────────────────────────────────
	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ── Analysis ──────────────────────────────────────────────────────
	app.Post("/analyze", func(c fiber.Ctx) error {
		var req AnalyzeRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		g, err := core.NewGraph(req.Nodes, coreEdges(req.Edges))
		if err != nil {
			return fail(c, err)
		}

		return analyze(c, st, g, req.Label, req.Source, req.Target, req.Persist)
	})

	app.Post("/analyze/sequential", func(c fiber.Ctx) error {
		var req SequentialRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		var opts []core.Option
		if req.StepWeight != nil {
			opts = append(opts, core.WithStepWeight(*req.StepWeight))
		}
		g, err := core.NewSequential(req.Sequence, opts...)
		if err != nil {
			return fail(c, err)
		}
		source := req.Source
		if source == "" {
			source = req.Sequence[0]
		}

		return analyze(c, st, g, req.Label, source, req.Target, req.Persist)
	})

	// ── Diagrams ──────────────────────────────────────────────────────
	app.Post("/render", func(c fiber.Ctx) error {
		var req RenderRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		g, err := core.NewGraph(req.Nodes, coreEdges(req.Edges))
		if err != nil {
			return fail(c, err)
		}

		var (
			res *bellmanford.Result
			rep *bellmanford.CycleReport
		)
		if req.Source != "" {
			if res, rep, err = bellmanford.Compute(g, req.Source); err != nil {
				return fail(c, err)
			}
		}

		opts := []render.Option{render.WithDimensions(req.Width, req.Height)}
		if req.Seed != 0 {
			opts = append(opts, render.WithSeed(req.Seed))
		}
		scene, err := render.NewScene(g, res, rep, req.Target, opts...)
		if err != nil {
			return fail(c, err)
		}
		data, err := render.Generate(c.Context(), scene, req.Format, opts...)
		if err != nil {
			return fail(c, err)
		}
		c.Set("Content-Type", contentType(req.Format))

		return c.Send(data)
	})

	// ── Runs ──────────────────────────────────────────────────────────
	app.Get("/runs", func(c fiber.Ctx) error {
		if st == nil {
			return noStore(c)
		}
		runs, err := st.ListRuns(c.Context())
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(runs)
	})

	app.Get("/runs/:id", func(c fiber.Ctx) error {
		if st == nil {
			return noStore(c)
		}
		r, err := st.GetRun(c.Context(), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}

		return c.JSON(r)
	})

	app.Delete("/runs/:id", func(c fiber.Ctx) error {
		if st == nil {
			return noStore(c)
		}
		if err := st.DeleteRun(c.Context(), c.Params("id")); err != nil {
			return fail(c, err)
		}

		return c.SendStatus(204)
	})

	return app
}

// analyze runs the engine over g and answers with the analysis JSON,
// persisting the run first when asked to. A negative cycle is a 200 with
// an advisory, never an error status.
func analyze(c fiber.Ctx, st foldstore.Store, g *core.Graph, label, source, target string, persist bool) error {
	res, rep, err := bellmanford.Compute(g, source)
	if err != nil {
		return fail(c, err)
	}
	resp := newAnalyzeResponse(res, rep, target)

	if persist {
		if st == nil {
			return noStore(c)
		}
		run, err := st.SaveRun(c.Context(), foldstore.NewRun(label, g, res, rep, target))
		if err != nil {
			return fail(c, err)
		}
		resp.RunID = run.ID
	}

	return c.JSON(resp)
}

// fail answers with the JSON error shape and the status the error maps to.
func fail(c fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// statusFor maps domain errors onto status codes: invalid input is 422, a
// missing run is 404, anything unexpected is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidEdge),
		errors.Is(err, core.ErrDuplicateNode),
		errors.Is(err, core.ErrEmptySequence),
		errors.Is(err, bellmanford.ErrUnknownSource),
		errors.Is(err, render.ErrUnsupportedFormat),
		errors.Is(err, foldstore.ErrEmptyID):
		return 422
	case errors.Is(err, foldstore.ErrRunNotFound):
		return 404
	default:
		return 500
	}
}

// noStore is the 503 answer of persistence endpoints when New got a nil
// store.
func noStore(c fiber.Ctx) error {
	return c.Status(503).JSON(fiber.Map{"error": "no run store configured"})
}

// contentType maps a render format (including its aliases) onto the media
// type of the produced bytes.
func contentType(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "svg":
		return "image/svg+xml"
	case "dot", "graphviz":
		return "text/vnd.graphviz"
	case "json":
		return "application/json"
	default: // ascii, txt
		return "text/plain; charset=utf-8"
	}
}
