package meshfile

import (
	"embed"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Boundary fixtures are drawn as svg polygons in fixtures/, and turned into
// .poly text here. This is not a real svg parser: it finds the one polygon in
// the file and panics on anything unexpected.

//go:embed fixtures
var fixtures embed.FS

func loadFixturePoints(name string) [][2]float64 {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points [][2]float64
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		xy := strings.Split(pointString, ",")
		if len(xy) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", xy[0], err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", xy[1], err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points
}

// polyFixture gives the .poly text for a fixture: its points, then one
// segment per polygon side. Sides starting at an even vertex are tagged
// essential, the rest natural.
func polyFixture(name string) string {
	points := loadFixturePoints(name)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", name)
	fmt.Fprintf(&b, "%d 2 0 1\n", len(points))
	for i, p := range points {
		fmt.Fprintf(&b, "%d %g %g 1\n", i+1, p[0], p[1])
	}
	fmt.Fprintf(&b, "%d 1\n", len(points))
	for i := range points {
		tag := 1
		if i%2 == 0 {
			tag = EssentialTag
		}
		fmt.Fprintf(&b, "%d %d %d %d\n", i+1, i+1, (i+1)%len(points)+1, tag)
	}
	b.WriteString("0\n")
	return b.String()
}
