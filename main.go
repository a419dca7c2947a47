package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

// vec3Flag parses "x,y,z"
type vec3Flag core.Vec3

func (v *vec3Flag) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

func (v *vec3Flag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return xerrors.Errorf("expected x,y,z but got %q", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return xerrors.Errorf("while parsing component %d of %q: %w", i, s, err)
		}
		xyz[i] = f
	}
	*v = vec3Flag(core.NewVec3(xyz[0], xyz[1], xyz[2]))
	return nil
}

type options struct {
	scene string
	seed  int64

	width, height     int
	samples, maxDepth int
	gamma             float64

	output string
	format string

	lookFrom, lookAt, up      vec3Flag
	vfov, aperture, focusDist float64
	shutterOpen, shutterClose float64

	cpuProfile string
	help       bool
}

func (o *options) register(fs *flag.FlagSet) {
	defaults := renderer.DefaultSamplingConfig()

	fs.StringVar(&o.scene, "scene", "random-spheres", "Built-in scene to render (see -help)")
	fs.Int64Var(&o.seed, "seed", defaults.Seed, "Seed for the scene layout and the pixel sampler")

	fs.IntVar(&o.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&o.height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&o.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&o.maxDepth, "max-depth", defaults.MaxDepth, "Maximum number of bounces per path")
	fs.Float64Var(&o.gamma, "gamma", defaults.Gamma, "Display gamma")

	fs.StringVar(&o.output, "output", "-", "Where to write the image: - for stdout, gs://bucket/object, or a local `path`")
	fs.StringVar(&o.format, "format", "", "Image format, ppm or png (inferred from -output when empty)")

	fs.Var(&o.lookFrom, "lookfrom", "Camera position as `x,y,z`")
	fs.Var(&o.lookAt, "lookat", "Point the camera looks at as `x,y,z`")
	fs.Var(&o.up, "up", "Camera up vector as `x,y,z`")
	fs.Float64Var(&o.vfov, "vfov", 20, "Vertical field of view in degrees")
	fs.Float64Var(&o.aperture, "aperture", 0, "Lens aperture diameter; 0 is a pinhole")
	fs.Float64Var(&o.focusDist, "focus-dist", 0, "Focus distance; 0 focuses on the look-at point")
	fs.Float64Var(&o.shutterOpen, "shutter-open", 0, "Shutter open time")
	fs.Float64Var(&o.shutterClose, "shutter-close", 0, "Shutter close time")

	fs.StringVar(&o.cpuProfile, "cpu-profile", "", "write cpu profile to `file`")
	fs.BoolVar(&o.help, "help", false, "Show help information")
}

// apply overrides the scene's defaults with the flags set explicitly in fs
func (o *options) apply(fs *flag.FlagSet, s *scene.Scene) {
	sampling := &s.SamplingConfig
	camera := &s.CameraConfig

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			sampling.Seed = o.seed
		case "width":
			sampling.Width = o.width
		case "height":
			sampling.Height = o.height
		case "samples":
			sampling.SamplesPerPixel = o.samples
		case "max-depth":
			sampling.MaxDepth = o.maxDepth
		case "gamma":
			sampling.Gamma = o.gamma
		case "lookfrom":
			camera.Center = core.Vec3(o.lookFrom)
		case "lookat":
			camera.LookAt = core.Vec3(o.lookAt)
		case "up":
			camera.Up = core.Vec3(o.up)
		case "vfov":
			camera.VFov = o.vfov
		case "aperture":
			camera.Aperture = o.aperture
		case "focus-dist":
			camera.FocusDistance = o.focusDist
		case "shutter-open":
			camera.ShutterOpen = o.shutterOpen
		case "shutter-close":
			camera.ShutterClose = o.shutterClose
		}
	})

	if sampling.Height > 0 {
		camera.AspectRatio = float64(sampling.Width) / float64(sampling.Height)
	}
}

func (o *options) imageFormat() string {
	if o.format != "" {
		return o.format
	}
	return output.FormatForPath(o.output)
}

func main() {
	opts := &options{}
	opts.register(flag.CommandLine)

	// stdout carries the image
	if err := flag.Set("logtostderr", "true"); err != nil {
		panic(err)
	}
	flag.Parse()
	defer glog.Flush()

	if opts.help {
		printHelp()
		return
	}

	if err := run(context.Background(), flag.CommandLine, opts); err != nil {
		glog.Exitf("Error: %v", err)
	}
}

func printHelp() {
	fmt.Fprintln(os.Stderr, "Path tracer")
	fmt.Fprintln(os.Stderr, "Usage: pathtracer [options] > image.ppm")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Available scenes:")
	for _, s := range scene.ListScenes() {
		fmt.Fprintf(os.Stderr, "  %-15s %s\n", s.ID, s.Description)
	}
}

func run(ctx context.Context, fs *flag.FlagSet, opts *options) error {
	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return xerrors.Errorf("while creating CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return xerrors.Errorf("while starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	s, err := scene.ByName(opts.scene, opts.seed)
	if err != nil {
		return err
	}
	opts.apply(fs, s)

	if err := s.SamplingConfig.Validate(); err != nil {
		return xerrors.Errorf("while configuring scene %q: %w", s.Name, err)
	}

	dest, err := output.OpenDestination(ctx, opts.output)
	if err != nil {
		return xerrors.Errorf("while opening %q: %w", opts.output, err)
	}

	sink, err := output.NewSink(opts.imageFormat(), dest)
	if err != nil {
		dest.Close()
		return err
	}

	glog.Infof("scene: %s (%d spheres)", s.Name, s.GetPrimitiveCount())
	glog.Infof("image: %dx%d, %d samples per pixel, max depth %d",
		s.SamplingConfig.Width, s.SamplingConfig.Height, s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)

	rt := renderer.NewRaytracer(s.World, s.NewCamera(), s.SamplingConfig)
	if _, err := rt.Render(sink); err != nil {
		dest.Close()
		return err
	}

	if err := sink.Flush(); err != nil {
		dest.Close()
		return err
	}
	if err := dest.Close(); err != nil {
		return xerrors.Errorf("while closing %q: %w", opts.output, err)
	}
	return nil
}
