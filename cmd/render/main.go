// Command render batch-renders a scene to a PPM file, either from a
// renderjob config file or from flags describing a canned scene.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/whitted/raytracer/ppm"
	"github.com/whitted/raytracer/renderjob"
	"github.com/whitted/raytracer/rt"
	"github.com/whitted/raytracer/scenes"
)

var (
	configFile = flag.String("config", "", "renderjob YAML config file; flags below are used if empty")
	scene      = flag.String("scene", "default", "scene name (default, glass_spheres, cover)")
	width      = flag.Int("width", 400, "image width in pixels")
	height     = flag.Int("height", 400, "image height in pixels")
	outFile    = flag.String("out", "out.ppm", "output PPM filename")
	workers    = flag.Int("workers", 0, "number of render goroutines (0 = runtime.NumCPU())")
)

func loadConfig() (renderjob.Config, error) {
	if *configFile != "" {
		return renderjob.Load(*configFile)
	}
	cfg := renderjob.Default()
	cfg.Scene = *scene
	cfg.Width = *width
	cfg.Height = *height
	cfg.Output = *outFile
	return cfg, nil
}

// renderConcurrently partitions the canvas into row tiles and renders
// them across n goroutines via Camera.RenderTile, each writing
// disjoint rows.
func renderConcurrently(c rt.Camera, world *rt.World, n int) rt.Canvas {
	image := rt.NewCanvas(c.HSize, c.VSize)
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > c.VSize {
		n = c.VSize
	}
	if n <= 1 {
		c.RenderTile(world, &image, 0, c.VSize)
		return image
	}

	rowsPerWorker := (c.VSize + n - 1) / n
	var wg sync.WaitGroup
	for start := 0; start < c.VSize; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > c.VSize {
			end = c.VSize
		}
		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			c.RenderTile(world, &image, yStart, yEnd)
		}(start, end)
	}
	wg.Wait()
	return image
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	world, err := scenes.Build(cfg.Scene)
	if err != nil {
		log.Fatal(err)
	}
	world.MaxRecursionDepth = cfg.MaxRecursion

	from := rt.Point(cfg.From[0], cfg.From[1], cfg.From[2])
	to := rt.Point(cfg.To[0], cfg.To[1], cfg.To[2])
	up := rt.Vector(cfg.Up[0], cfg.Up[1], cfg.Up[2])
	camera := rt.NewCamera(cfg.Width, cfg.Height, cfg.FieldOfView, rt.ViewTransform(from, to, up))

	image := renderConcurrently(camera, &world, *workers)

	f, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := ppm.Encode(f, image); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", cfg.Output)
}
