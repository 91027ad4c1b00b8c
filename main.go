package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/radiant-render/radiant/pkg/loaders"
	"github.com/radiant-render/radiant/pkg/log"
	"github.com/radiant-render/radiant/pkg/math"
	"github.com/radiant-render/radiant/pkg/scene"
	"github.com/radiant-render/radiant/pkg/trace"
)

var logger = log.New("radiant")

func main() {
	app := cli.NewApp()
	app.Name = "radiant"
	app.Usage = "render scenes with a progressive path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a scene to a png image",
			ArgsUsage: "cornell|showcase|solid|scene.obj",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "resolution, r",
					Value: 720,
					Usage: "pixels along the longest image edge",
				},
				cli.IntFlag{
					Name:  "samples, s",
					Value: 256,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces, b",
					Value: 8,
					Usage: "maximum path bounces",
				},
				cli.StringFlag{
					Name:  "shader",
					Value: "raytrace",
					Usage: "raytrace, eyelight, normal, texcoord, color, toon or frosted",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 961748941,
					Usage: "seed for the per-pixel random streams",
				},
				cli.Float64Flag{
					Name:  "clamp",
					Value: 100,
					Usage: "per-sample radiance clamp",
				},
				cli.BoolFlag{
					Name:  "noparallel",
					Usage: "render every row on one goroutine",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render goroutines, 0 means one per cpu",
				},
				cli.StringFlag{
					Name:  "envmap",
					Usage: "image used as an environment panorama",
				},
				cli.IntFlag{
					Name:  "camera",
					Value: 0,
					Usage: "index of the scene camera to render from",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.png",
					Usage: "output image filename",
				},
			},
			Action: renderScene,
		},
		{
			Name:      "info",
			Usage:     "print scene contents and tree statistics without rendering",
			ArgsUsage: "cornell|showcase|solid|scene.obj",
			Action:    sceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// loadScene resolves the command argument to one of the built-in demo
// scenes or loads it as a Wavefront OBJ file.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("missing scene argument")
	}

	name := ctx.Args().First()
	switch name {
	case "cornell":
		return scene.CornellBox(), nil
	case "showcase":
		return scene.MaterialShowcase(), nil
	case "solid":
		return scene.SolidShowcase()
	}

	scn := scene.New()
	if err := loaders.LoadOBJ(scn, name); err != nil {
		return nil, err
	}
	return scn, nil
}

// addDefaultCamera frames the whole scene from the front, far enough away
// that the bounding sphere fills the film's short edge.
func addDefaultCamera(scn *scene.Scene) {
	camera := scn.AddCamera()
	camera.SetLens(0.05, 16.0/9.0, 0.036)

	bounds := scn.Bounds()
	center := bounds.Center()
	radius := bounds.Size().Len() / 2
	distance := 2 * radius * camera.Lens / camera.Film[1]
	camera.Frame = math.LookAtFrame(center.Add(math.Vec3{0, 0, distance}), center, math.Vec3{0, 1, 0})
	camera.SetFocus(0, distance)
}

func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	params := trace.DefaultParams()
	params.Resolution = ctx.Int("resolution")
	params.Samples = ctx.Int("samples")
	params.Bounces = ctx.Int("bounces")
	params.Seed = uint64(ctx.Int64("seed"))
	params.Clamp = float32(ctx.Float64("clamp"))
	params.NoParallel = ctx.Bool("noparallel")
	params.Workers = ctx.Int("workers")

	shader, err := trace.ParseShader(ctx.String("shader"))
	if err != nil {
		return err
	}
	params.Shader = shader

	scn, err := loadScene(ctx)
	if err != nil {
		return err
	}

	if path := ctx.String("envmap"); path != "" {
		tex, err := loaders.LoadTexture(scn, path)
		if err != nil {
			return err
		}
		env := scn.AddEnvironment()
		env.Emission = math.Vec3{1, 1, 1}
		env.EmissionTex = tex
	}

	if len(scn.Cameras) == 0 {
		addDefaultCamera(scn)
	}
	camIdx := ctx.Int("camera")
	if camIdx < 0 || camIdx >= len(scn.Cameras) {
		return fmt.Errorf("camera %d does not exist, scene has %d", camIdx, len(scn.Cameras))
	}
	camera := scn.Cameras[camIdx]

	logger.Noticef("rendering %s with the %s shader", ctx.Args().First(), params.Shader)
	scn.BuildBVH(func(stage string, current, total int) {
		logger.Infof("%s %d/%d", stage, current, total)
	})

	renderer, err := trace.New(scn, camera, params)
	if err != nil {
		return err
	}
	st := trace.NewState(camera, params)

	start := time.Now()
	renderer.Render(st, func(pass, total int) {
		logger.Infof("sample %d/%d", pass, total)
	})
	elapsed := time.Since(start)

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, st.Image()); err != nil {
		return fmt.Errorf("failed to encode output image: %w", err)
	}

	displayRenderStats(st, renderer.Params(), out, elapsed)
	return nil
}

func displayRenderStats(st *trace.State, params trace.Params, out string, elapsed time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Image", "Shader", "Samples", "Bounces", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", st.Width, st.Height),
		params.Shader.String(),
		fmt.Sprintf("%d", params.Samples),
		fmt.Sprintf("%d", params.Bounces),
		fmt.Sprintf("%d", params.Workers),
		elapsed.Round(time.Millisecond).String(),
	})

	table.Render()
	logger.Noticef("saved %s\n%s", out, buf.String())
}

func sceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	scn, err := loadScene(ctx)
	if err != nil {
		return err
	}
	scn.BuildBVH(func(stage string, current, total int) {
		logger.Infof("%s %d/%d", stage, current, total)
	})

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tree", "Primitives", "Nodes", "Leaves", "Depth"})
	for i, shape := range scn.Shapes {
		stats := shape.BVH.CollectStats()
		table.Append([]string{
			fmt.Sprintf("shape %d", i),
			fmt.Sprintf("%d", stats.Primitives),
			fmt.Sprintf("%d", stats.Nodes),
			fmt.Sprintf("%d", stats.Leaves),
			fmt.Sprintf("%d", stats.MaxDepth),
		})
	}
	stats := scn.BVH.CollectStats()
	table.SetFooter([]string{
		"scene",
		fmt.Sprintf("%d", stats.Primitives),
		fmt.Sprintf("%d", stats.Nodes),
		fmt.Sprintf("%d", stats.Leaves),
		fmt.Sprintf("%d", stats.MaxDepth),
	})

	table.Render()
	logger.Noticef("%s: %d cameras, %d shapes, %d materials, %d textures, %d instances, %d environments\n%s",
		ctx.Args().First(), len(scn.Cameras), len(scn.Shapes), len(scn.Materials),
		len(scn.Textures), len(scn.Instances), len(scn.Environments), buf.String())
	return nil
}
