// Package raydepth is a small CPU raycaster that turns a scene of implicit
// surfaces into a per-pixel depth buffer.
//
// What is raydepth?
//
//	A pure-Go renderer core built from a handful of focused packages:
//		• matrix   – Vector, Dense matrix and Grid[T] algebra kernel
//		• geometry – Transform (pose) and Ray value types
//		• camera   – rectilinear ray-grid generation with fisheye correction
//		• surface  – ray intersection for hyperplanes and hyperellipsoids
//		• depth    – nearest-hit depth field assembly, optionally in parallel
//		• scene    – thread-safe registry of posed surfaces
//		• config   – YAML settings
//		• canvas   – ASCII and PNG presentation of a depth field
//
// The root package only carries the shared logger. Sub-packages call
// Logger() so a single SetLogger call configures all of them; by default
// nothing is logged.
//
// Quick start:
//
//	cfg := config.Default()
//	cam, _ := camera.FromConfig(geometry.DefaultTransform(), cfg)
//	sc := scene.New()
//	sphere, _ := surface.Sphere(1)
//	pose, _ := geometry.At(5, 0, 0, 1, 0, 0)
//	sc.Add(pose, sphere)
//	field, _ := depth.Compute(cam, cfg.ScreenWidth, cfg.ScreenHeight, sc.Snapshot())
//	for _, line := range canvas.Shade(field, cam.DrawDistance()) {
//		fmt.Println(line)
//	}
//
// See cmd/raydepth for a complete frame loop.
package raydepth
