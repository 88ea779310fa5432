// painter - terminal software renderer
// Renders OBJ and GLB meshes (or a built-in cube) in the terminal with a
// flat-shaded painter's-algorithm pipeline.
//
// Controls:
//
//	W/S         - Move forward/back along the view direction
//	Up/Down     - Move up/down
//	A/D, ←/→    - Turn left/right
//	Mouse drag  - Turn left/right
//	Mouse wheel - Move forward/back
//	Space       - Start/stop the spin
//	X           - Toggle wireframe
//	R           - Reset camera and spin
//	?           - Toggle HUD overlay
//	Esc, Q      - Quit
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/scene"
)

var version = "dev"

// options holds the command-line settings.
type options struct {
	fov         float64
	near        float64
	far         float64
	depth       float64
	pixelAspect float64
	fit         float64
	wireframe   bool
	spin        bool
	halfBlock   bool
	fps         int
	logFile     string
	logLevel    string
}

// config builds the render configuration for painting s on a cols×rows
// terminal.
func (o options) config(s surface, cols, rows int) render.Config {
	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height = pixelSize(s, cols, rows)
	cfg.PixelAspect = o.pixelAspect / float64(s.rowsPerCell())
	cfg.FOVDegrees = o.fov
	cfg.Near = o.near
	cfg.Far = o.far
	cfg.ObjectDepth = o.depth
	cfg.Wireframe = o.wireframe
	cfg.Spin = o.spin
	return cfg
}

func newRootCmd() *cobra.Command {
	def := render.DefaultConfig()
	opts := options{}

	cmd := &cobra.Command{
		Use:   "painter [model.obj|model.glb]",
		Short: "Render a 3D mesh in the terminal",
		Long: "painter transforms, culls, shades, clips and depth sorts a triangle mesh " +
			"every frame and paints it with shade glyphs. Without a model it shows a cube.",
		Example: "  painter\n  painter --wireframe teapot.obj\n  painter --spin=false --depth 5 ship.glb",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), opts, path)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.fov, "fov", def.FOVDegrees, "field of view in degrees")
	f.Float64Var(&opts.near, "near", def.Near, "near clip distance")
	f.Float64Var(&opts.far, "far", def.Far, "far plane distance")
	f.Float64Var(&opts.depth, "depth", def.ObjectDepth, "distance of the mesh from the camera")
	f.Float64Var(&opts.pixelAspect, "pixel-aspect", 2, "terminal cell height divided by width")
	f.Float64Var(&opts.fit, "fit", 1, "scale the mesh so its largest side has this size (0 keeps it as is)")
	f.BoolVar(&opts.wireframe, "wireframe", def.Wireframe, "outline triangles")
	f.BoolVar(&opts.spin, "spin", def.Spin, "spin the mesh")
	f.BoolVar(&opts.halfBlock, "halfblock", false, "draw flat colors at two pixels per cell instead of shade glyphs")
	f.IntVar(&opts.fps, "fps", 60, "target frames per second")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func main() {
	err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging installs a text logger writing to path. The returned func
// closes the file.
func setupLogging(path, level string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})))
	return func() {
		render.SetLogger(nil)
		f.Close()
	}, nil
}

// loadMesh loads the model at path, or the built-in cube when path is empty.
func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.Cube(), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, stats, err := models.LoadOBJ(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		if stats.Skipped() > 0 {
			render.Logger().Warn("skipped malformed obj records",
				slog.String("file", mesh.Name),
				slog.Int("vertices", stats.SkippedVertex),
				slog.Int("faces", stats.SkippedFace),
			)
		}
		return mesh, nil
	case ".glb", ".gltf":
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		return mesh, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
}

func run(ctx context.Context, opts options, modelPath string) error {
	if opts.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", opts.fps)
	}

	closeLog, err := setupLogging(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	mesh, err := loadMesh(modelPath)
	if err != nil {
		return err
	}
	if opts.fit > 0 {
		mesh.FitTo(opts.fit)
	}
	render.Logger().Info("mesh loaded",
		slog.String("name", mesh.Name),
		slog.Int("vertices", mesh.VertexCount()),
		slog.Int("triangles", mesh.TriangleCount()),
	)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	surf := newSurface(opts.halfBlock, width, height)
	sc, err := scene.New(opts.config(surf, width, height), mesh, opts.fps)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hud := newHUD(mesh.Name, mesh.TriangleCount(), time.Now())
	keys := newKeyTracker(250 * time.Millisecond)
	var drag dragTracker

	// Scene changes requested by the event goroutine, applied between frames
	commands := make(chan func(), 16)
	send := func(f func()) {
		select {
		case commands <- f:
		case <-ctx.Done():
		}
	}

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				w, h := ev.Width, ev.Height
				send(func() {
					term.Erase()
					term.Resize(w, h)
					surf.resize(w, h)
					if err := sc.Resize(pixelSize(surf, w, h)); err != nil {
						render.Logger().Warn("resize ignored", slog.Any("err", err))
					}
				})

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					cancel()
					return
				case ev.MatchString("space"):
					send(sc.ToggleSpin)
				case ev.MatchString("x"):
					send(sc.ToggleWireframe)
				case ev.MatchString("r"):
					send(sc.Reset)
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					send(func() { hud.visible = !hud.visible })
				default:
					if a, ok := actionFor(ev); ok {
						keys.press(a, time.Now())
					}
				}

			case uv.KeyReleaseEvent:
				if a, ok := actionFor(ev); ok {
					keys.release(a)
				}

			case uv.MouseClickEvent:
				drag.press(ev.X)

			case uv.MouseReleaseEvent:
				drag.release()

			case uv.MouseMotionEvent:
				if dx, ok := drag.move(ev.X); ok {
					send(func() { sc.Camera.Turn(dragTurn(dx)) })
				}

			case uv.MouseWheelEvent:
				if d, ok := wheelStep(ev.Button); ok {
					send(func() { sc.Camera.MoveForward(d) })
				}
			}
		}
	}()

	// Main loop
	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-commands:
			f()
			continue
		case <-ticker.C:
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		frame := sc.Update(dt, keys.controls(now))

		surf.clear()
		sc.Draw(frame, surf)
		surf.Draw(term, term.Bounds())

		hud.tick(now)
		hud.draw(term, term.Bounds(), frame.Stats, sc.Wireframe(), sc.Spinning())

		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}
}
