package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/recursive_art/pkg/art"
	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

// Engine generates a batch of images.
type Engine struct {
	cfg    Config
	pool   pool.Pool
	namer  *FileNamer
	seed   int64
	runID  string
	logger zerolog.Logger
}

// New creates a new engine from the given config.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := pool.Get(cfg.Pool)
	if err != nil {
		return nil, err
	}
	namer, err := NewFileNamer(cfg.OutDir, cfg.Filename, time.Now())
	if err != nil {
		return nil, fmt.Errorf("parsing filename template: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	runID := uuid.NewString()

	return &Engine{
		cfg:    cfg,
		pool:   p,
		namer:  namer,
		seed:   seed,
		runID:  runID,
		logger: log.With().Str("run", runID).Logger(),
	}, nil
}

// Seed returns the base seed of the run. Image i is built from Seed()+i.
func (e *Engine) Seed() int64 { return e.seed }

// Run generates cfg.Count images, at most cfg.Workers at a time. Each image
// is rendered on a single goroutine. The first failure cancels images that
// have not started yet.
func (e *Engine) Run(ctx context.Context) (FinalReport, error) {
	start := time.Now()

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	e.logger.Info().
		Str("pool", e.pool.Name()).
		Int("count", e.cfg.Count).
		Int("width", e.cfg.Width).
		Int("height", e.cfg.Height).
		Int("min_depth", e.cfg.MinDepth).
		Int("max_depth", e.cfg.MaxDepth).
		Int("workers", workers).
		Int64("seed", e.seed).
		Msg("starting generation")

	if err := os.MkdirAll(e.cfg.OutDir, 0o755); err != nil {
		return FinalReport{}, fmt.Errorf("creating output dir: %w", err)
	}

	results := make([]ImageResult, e.cfg.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < e.cfg.Count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.generate(i)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FinalReport{}, err
	}

	report := FinalReport{
		RunID:   e.runID,
		Pool:    e.pool.Name(),
		Config:  e.cfg,
		Seed:    e.seed,
		Images:  results,
		Elapsed: time.Since(start),
	}
	e.logger.Info().Dur("elapsed", report.Elapsed).Msg("generation finished")
	return report, nil
}

// generate builds, renders and saves the image at index.
func (e *Engine) generate(index int) (ImageResult, error) {
	start := time.Now()
	seed := e.seed + int64(index)
	rng := rand.New(rand.NewSource(seed))

	channels := art.NewChannels(e.pool, rng, e.cfg.MinDepth, e.cfg.MaxDepth)
	path := e.namer.Name(index, seed)

	l := e.logger.With().Int("index", index).Int64("seed", seed).Str("file", path).Logger()
	l.Debug().
		Int("depth_red", channels.Red.Depth()).
		Int("depth_green", channels.Green.Depth()).
		Int("depth_blue", channels.Blue.Depth()).
		Int("nodes", channels.NodeCount()).
		Msg("built channels")

	img := art.Generate(channels, e.cfg.Width, e.cfg.Height)
	if err := art.Save(img, path); err != nil {
		return ImageResult{}, fmt.Errorf("saving image %d: %w", index, err)
	}

	res := newImageResult(index, seed, path, channels)
	if e.cfg.SaveExpr {
		res.ExprFile = ExprPath(path)
		sc := Sidecar{
			Image:    path,
			Seed:     seed,
			Pool:     e.pool.Name(),
			Width:    e.cfg.Width,
			Height:   e.cfg.Height,
			MinDepth: e.cfg.MinDepth,
			MaxDepth: e.cfg.MaxDepth,
			Channels: channels,
		}
		if err := WriteSidecar(res.ExprFile, sc); err != nil {
			return ImageResult{}, fmt.Errorf("saving expressions for image %d: %w", index, err)
		}
	}
	res.Elapsed = time.Since(start)

	l.Info().Dur("elapsed", res.Elapsed).Msg("image saved")
	return res, nil
}

// Sidecar is the expression document written next to an image so it can be
// rendered again.
type Sidecar struct {
	Image    string       `json:"image"`
	Seed     int64        `json:"seed"`
	Pool     string       `json:"pool"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	MinDepth int          `json:"min_depth"`
	MaxDepth int          `json:"max_depth"`
	Channels art.Channels `json:"channels"`
}

// WriteSidecar writes sc as indented JSON to path.
func WriteSidecar(path string, sc Sidecar) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadSidecar reads a document written by WriteSidecar.
func ReadSidecar(path string) (Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sidecar{}, err
	}
	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return Sidecar{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if sc.Channels.Red == nil || sc.Channels.Green == nil || sc.Channels.Blue == nil {
		return Sidecar{}, fmt.Errorf("reading %s: %w: missing channels", path, expr.ErrDecode)
	}
	return sc, nil
}

// Render draws the channels of sc into a width x height PNG at outPath.
// Zero width or height fall back to the size stored in sc.
func Render(sc Sidecar, outPath string, width, height int) error {
	if width <= 0 {
		width = sc.Width
	}
	if height <= 0 {
		height = sc.Height
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", width, height)
	}
	img := art.Generate(sc.Channels, width, height)
	if err := art.Save(img, outPath); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}
	log.Info().Str("file", outPath).Int("width", width).Int("height", height).Msg("image rendered")
	return nil
}
