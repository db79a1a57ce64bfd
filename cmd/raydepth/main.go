// SPDX-License-Identifier: MIT

// Command raydepth renders a small demo scene as a depth buffer in the terminal.
//
// Usage:
//
//	raydepth [-config settings.yaml] [-frames 0] [-workers 4] [-png last.png] [-v]
//	raydepth -init settings.yaml
//
// With -frames 0 the loop runs until interrupted.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/raydepth"
	"github.com/katalvlaran/raydepth/camera"
	"github.com/katalvlaran/raydepth/canvas"
	"github.com/katalvlaran/raydepth/config"
	"github.com/katalvlaran/raydepth/depth"
	"github.com/katalvlaran/raydepth/geometry"
	"github.com/katalvlaran/raydepth/matrix"
	"github.com/katalvlaran/raydepth/scene"
	"github.com/katalvlaran/raydepth/surface"
)

var (
	configPath = flag.String("config", "", "YAML settings file (defaults when empty)")
	initPath   = flag.String("init", "", "write the default settings to this file and exit")
	frames     = flag.Int("frames", 0, "number of frames to render, 0 = until interrupted")
	workers    = flag.Int("workers", runtime.NumCPU(), "rows traced concurrently")
	pngPath    = flag.String("png", "", "save the last frame as a PNG")
	yawStep    = flag.Float64("yaw", 0.02, "camera yaw per frame, radians")
	verbose    = flag.Bool("v", false, "debug logging")
)

// ansiHome moves the cursor to the top-left corner so frames overwrite each other.
const ansiHome = "\x1b[H"

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	raydepth.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *initPath != "" {
		if err := config.Save(*initPath, config.Default()); err != nil {
			log.Fatalf("init: %v", err)
		}
		log.Printf("default settings written to %s", *initPath)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("raydepth: %v", err)
	}
}

func loadConfig() (config.Config, error) {
	if *configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	raydepth.Logger().Info("settings loaded", "path", *configPath)

	return cfg, nil
}

// demoScene places a floor, a back wall, a sphere and a tilted ellipsoid in
// front of a camera at the origin looking along +X. It returns the ID of the
// ellipsoid so the loop can animate it.
func demoScene() (*scene.Scene, uuid.UUID, error) {
	sc := scene.New(scene.WithCapacity(4))

	floor, err := geometry.At(0, 0, -2, 0, 0, 1)
	if err != nil {
		return nil, uuid.Nil, err
	}
	wall, err := geometry.At(40, 0, 0, 1, 0, 0)
	if err != nil {
		return nil, uuid.Nil, err
	}
	ballPose, err := geometry.At(10, -3, 0, 1, 0, 0)
	if err != nil {
		return nil, uuid.Nil, err
	}
	eggPose, err := geometry.At(14, 4, 0, 1, 1, 0.5)
	if err != nil {
		return nil, uuid.Nil, err
	}
	ball, err := surface.Sphere(2)
	if err != nil {
		return nil, uuid.Nil, err
	}
	egg, err := surface.NewHyperellipsoid(3, 1.5, 1)
	if err != nil {
		return nil, uuid.Nil, err
	}

	if _, err = sc.Add(floor, surface.Hyperplane{}); err != nil {
		return nil, uuid.Nil, err
	}
	if _, err = sc.Add(wall, surface.Hyperplane{}); err != nil {
		return nil, uuid.Nil, err
	}
	if _, err = sc.Add(ballPose, ball); err != nil {
		return nil, uuid.Nil, err
	}
	eggID, err := sc.Add(eggPose, egg)
	if err != nil {
		return nil, uuid.Nil, err
	}
	raydepth.Logger().Info("scene built", "entries", sc.Len())

	return sc, eggID, nil
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cam, err := camera.FromConfig(geometry.DefaultTransform(), cfg)
	if err != nil {
		return err
	}
	sc, eggID, err := demoScene()
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TargetFPS))
	defer ticker.Stop()

	var last *depth.Field
	for frame := 0; *frames == 0 || frame < *frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		// bob the ellipsoid up and down
		dz := 0.1 * math.Sin(float64(frame)*0.2)
		if err = sc.Update(eggID, func(p geometry.Transform) (geometry.Transform, error) {
			return p.Translated(matrix.Vec3(0, 0, dz))
		}); err != nil {
			return err
		}

		field, err := depth.Compute(cam, cfg.ScreenWidth, cfg.ScreenHeight, sc.Snapshot(),
			depth.WithWorkers(max(1, *workers)),
			depth.WithContext(ctx))
		if err != nil {
			return err
		}
		last = field

		if _, err = out.WriteString(ansiHome); err != nil {
			return err
		}
		if err = canvas.Render(out, field, cam.DrawDistance()); err != nil {
			return err
		}
		if err = out.Flush(); err != nil {
			return fmt.Errorf("flush frame %d: %w", frame, err)
		}

		pose, err := cam.Pose().Rotated(0, 0, *yawStep)
		if err != nil {
			return err
		}
		if cam, err = cam.WithPose(pose); err != nil {
			return err
		}
	}

	if *pngPath != "" && last != nil {
		if err = canvas.SavePNG(*pngPath, last, cam.DrawDistance()); err != nil {
			return err
		}
		raydepth.Logger().Info("last frame saved", "path", *pngPath)
	}

	return nil
}
