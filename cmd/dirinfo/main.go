// Command dirinfo prints coordinate conversions for spherical directions.
//
// Usage:
//
//	dirinfo [flags] azimuth:colatitude ...
//
// Angles are given in degrees. For each direction it prints the Cartesian
// unit vector in both spherical conventions, and with -sep the pairwise
// great-circle separation between the listed directions.
//
// Examples:
//
//	dirinfo 0:90 90:90
//	dirinfo -radius 2.5 45:45
//	dirinfo -sep 0:90 90:90 180:90
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spatial/coords"
	"github.com/cwbudde/algo-spatial/sphere"
)

type direction struct {
	label      string
	azimuth    float64 // radians
	colatitude float64 // radians
}

func main() {
	radius := flag.Float64("radius", 1, "sphere radius")
	sep := flag.Bool("sep", false, "print pairwise great-circle separations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dirinfo [flags] azimuth:colatitude ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints Cartesian conversions for spherical directions (degrees).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dirinfo 0:90 90:90\n")
		fmt.Fprintf(os.Stderr, "  dirinfo -sep 0:90 90:90 180:90\n")
	}
	flag.Parse()

	dirs := parseDirections(flag.Args())
	if len(dirs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	printConversions(dirs, *radius)
	if *sep {
		printSeparations(dirs, *radius)
	}
}

func parseDirections(args []string) []direction {
	var dirs []direction
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "warning: skipping %q (want azimuth:colatitude)\n", arg)
			continue
		}
		azi, err1 := strconv.ParseFloat(parts[0], 64)
		colat, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %q (bad number)\n", arg)
			continue
		}
		dirs = append(dirs, direction{
			label:      arg,
			azimuth:    coords.Deg2Rad(azi),
			colatitude: coords.Deg2Rad(colat),
		})
	}
	return dirs
}

func printConversions(dirs []direction, radius float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Direction\tX\tY\tZ\tElevation [deg]\n")
	fmt.Fprintf(tw, "---------\t-\t-\t-\t---------------\n")

	for _, d := range dirs {
		x, y, z := coords.SphToCart(d.azimuth, d.colatitude, radius)
		elev := math.Pi/2 - d.colatitude
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.2f\n", d.label, x, y, z, elev/math.Pi*180)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSeparations(dirs []direction, radius float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nPair\tSeparation\n")
	fmt.Fprintf(tw, "----\t----------\n")

	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			d := sphere.Haversine(dirs[i].azimuth, dirs[i].colatitude,
				dirs[j].azimuth, dirs[j].colatitude, radius)
			fmt.Fprintf(tw, "%s %s\t%.6f\n", dirs[i].label, dirs[j].label, d)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
