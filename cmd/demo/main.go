package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/lmarchetti/raytracer/loader"
	"github.com/lmarchetti/raytracer/log"
	"github.com/lmarchetti/raytracer/renderer"
	"github.com/lmarchetti/raytracer/scene"
	"github.com/lmarchetti/raytracer/types"
)

var logger = log.New("demo")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "raytracer-demo"
	app.Usage = "render a showcase scene with the CPU ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v", Usage: "enable verbose logging"},
		cli.BoolFlag{Name: "vv", Usage: "enable even more verbose logging"},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a BMP file",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Value: 640, Usage: "frame width"},
				cli.IntFlag{Name: "height", Value: 480, Usage: "frame height"},
				cli.IntFlag{Name: "workers", Value: 0, Usage: "worker goroutines (0 = NumCPU)"},
				cli.StringFlag{Name: "mesh", Usage: "optional OBJ file to load as an extra mesh"},
				cli.StringFlag{Name: "out, o", Value: "RayTracing_Buffer.bmp", Usage: "output BMP file path"},
			},
			Action: renderFrame,
		},
		{
			Name:  "interactive",
			Usage: "render the scene into an interactive window",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "width", Value: 640, Usage: "frame width"},
				cli.IntFlag{Name: "height", Value: 480, Usage: "frame height"},
				cli.StringFlag{Name: "mesh", Usage: "optional OBJ file to load as an extra mesh"},
			},
			Action: renderInteractive,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

func buildScene(ctx *cli.Context) (*scene.Scene, error) {
	s := buildDefaultScene()

	meshPath := ctx.String("mesh")
	if meshPath == "" {
		return s, nil
	}

	f, err := os.Open(meshPath)
	if err != nil {
		return nil, fmt.Errorf("demo: opening mesh file: %w", err)
	}
	defer f.Close()

	parsed, err := loader.ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("demo: parsing mesh file: %w", err)
	}

	matIdx := s.AddMaterial(scene.Material{Kind: scene.MaterialLambert, Albedo: types.RGB(0.7, 0.7, 0.7)})
	mesh := scene.NewTriangleMesh(parsed.Positions, parsed.Indices, parsed.Normals, scene.CullBackFace, matIdx)
	if err := s.AddMesh(mesh); err != nil {
		return nil, err
	}

	return s, nil
}

func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := buildScene(ctx)
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions(uint32(ctx.Int("width")), uint32(ctx.Int("height")))
	opts.NumWorkers = uint32(ctx.Int("workers"))

	r, err := renderer.New(opts)
	if err != nil {
		return err
	}
	defer r.Close()

	stats, err := r.RenderFrame(s)
	if err != nil {
		return err
	}
	displayFrameStats(stats)

	out, err := os.Create(ctx.String("out"))
	if err != nil {
		return fmt.Errorf("demo: creating output file: %w", err)
	}
	defer out.Close()

	if err := renderer.WriteBMP(out, r.Framebuffer()); err != nil {
		return err
	}

	logger.Infof("wrote frame to %s", ctx.String("out"))
	return nil
}

func renderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	s, err := buildScene(ctx)
	if err != nil {
		return err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	win, err := renderer.NewWindow(width, height, "raytracer-demo")
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := renderer.New(renderer.DefaultOptions(uint32(width), uint32(height)))
	if err != nil {
		return err
	}
	defer r.Close()

	return win.Run(r, s)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Width", "Height", "Workers", "Render time", "Pixels/sec"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Width),
		fmt.Sprintf("%d", stats.Height),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%s", stats.RenderTime),
		fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
	})
	table.Render()
	logger.Infof("frame statistics\n%s", buf.String())
}
