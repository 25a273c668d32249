package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/geometry"
	"github.com/urfave/cli"
)

// probeConfig describes one ray cast at one transformed unit sphere
type probeConfig struct {
	Origin    core.Point
	Direction core.Vector
	Translate core.Vector
	Scale     core.Vector
	RotateY   float64
}

func main() {
	app := cli.NewApp()
	app.Name = "raytracer-kernel"
	app.Usage = "cast a ray at a transformed unit sphere and report the intersections"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "origin",
			Value: "0,0,-5",
			Usage: "ray origin as x,y,z",
		},
		cli.StringFlag{
			Name:  "direction",
			Value: "0,0,1",
			Usage: "ray direction as x,y,z",
		},
		cli.StringFlag{
			Name:  "translate",
			Value: "0,0,0",
			Usage: "sphere translation as x,y,z",
		},
		cli.StringFlag{
			Name:  "scale",
			Value: "1,1,1",
			Usage: "sphere scale as x,y,z",
		},
		cli.Float64Flag{
			Name:  "rotate-y",
			Usage: "sphere rotation around Y in radians",
		},
	}
	app.Action = func(c *cli.Context) error {
		config, err := configFromContext(c)
		if err != nil {
			return err
		}
		return probe(config, core.NewDefaultLogger())
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configFromContext(c *cli.Context) (probeConfig, error) {
	var triples [4][3]float64
	for i, name := range []string{"origin", "direction", "translate", "scale"} {
		parsed, err := parseTriple(c.String(name))
		if err != nil {
			return probeConfig{}, fmt.Errorf("invalid --%s: %v", name, err)
		}
		triples[i] = parsed
	}

	origin, direction, translate, scale := triples[0], triples[1], triples[2], triples[3]
	return probeConfig{
		Origin:    core.NewPoint(origin[0], origin[1], origin[2]),
		Direction: core.NewVector(direction[0], direction[1], direction[2]),
		Translate: core.NewVector(translate[0], translate[1], translate[2]),
		Scale:     core.NewVector(scale[0], scale[1], scale[2]),
		RotateY:   c.Float64("rotate-y"),
	}, nil
}

// parseTriple parses "x,y,z"
func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("expected x,y,z, got %q", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return out, fmt.Errorf("component %d of %q: %v", i, s, err)
		}
		out[i] = v
	}
	return out, nil
}

// probe builds the sphere, casts the ray and logs every intersection and the hit
func probe(config probeConfig, logger core.Logger) error {
	// scale, then rotate, then translate
	transform, err := core.Chain(
		core.Scaling(config.Scale.X, config.Scale.Y, config.Scale.Z),
		core.RotationY(config.RotateY),
		core.Translation(config.Translate.X, config.Translate.Y, config.Translate.Z),
	)
	if err != nil {
		return err
	}

	sphere, err := geometry.NewTransformedSphere(transform)
	if err != nil {
		return fmt.Errorf("failed to create sphere: %w", err)
	}

	ray := core.NewRay(config.Origin, config.Direction)
	xs, err := sphere.Intersect(ray)
	if err != nil {
		return fmt.Errorf("failed to intersect: %w", err)
	}

	logger.Printf("Ray %v -> %v: %d intersection(s)\n", ray.Origin, ray.Direction, len(xs))
	for i, x := range xs {
		logger.Printf("  [%d] t=%g\n", i, x.T)
	}

	hit, ok := xs.Hit()
	if !ok {
		logger.Printf("No visible hit\n")
		return nil
	}

	point := ray.Position(hit.T)
	normal, err := hit.Object.NormalAt(point)
	if err != nil {
		return fmt.Errorf("failed to compute normal: %w", err)
	}
	logger.Printf("Hit at t=%g, point %v, normal %v\n", hit.T, point, normal)
	return nil
}
