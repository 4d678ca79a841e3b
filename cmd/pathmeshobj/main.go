// Command pathmeshobj converts SVG path data into a Wavefront OBJ coverage
// mesh.
//
// The path is rasterized through a registered engine selected with -engine.
// The built-in bounds engine is always registered; it stands in when no
// real engine is linked into the binary and produces the mesh of the path's
// bounding box rather than true coverage. Real engines register themselves
// when their packages are linked in.
//
// Examples:
//
//	pathmeshobj -d "M10 10 L90 10 L50 80 Z" -o triangle.obj
//	echo "M10 10 H90 V90 H10 Z" | pathmeshobj -o - | head
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/pathmesh"
	"github.com/gogpu/pathmesh/enginetest"
	"github.com/gogpu/pathmesh/obj"
	"github.com/gogpu/pathmesh/svgpath"
)

func main() {
	var (
		data    = flag.String("d", "", "SVG path data (reads stdin when empty)")
		engine  = flag.String("engine", "bounds", "registered engine name")
		fill    = flag.String("fill", "alternate", "fill rule: alternate or winding")
		clip    = flag.String("clip", "0,0,256,256", "device clip as x,y,w,h")
		output  = flag.String("o", "mesh.obj", `output OBJ file ("-" for stdout)`)
		list    = flag.Bool("engines", false, "list registered engines and exit")
		verbose = flag.Bool("v", false, "log driver protocol steps")
	)
	flag.Parse()

	if err := pathmesh.RegisterEngine("bounds", &enginetest.BoundsEngine{}); err != nil {
		log.Fatalf("register bounds engine: %v", err)
	}

	if *list {
		for _, name := range pathmesh.EngineNames() {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		pathmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	d := *data
	if d == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		d = strings.TrimSpace(string(raw))
	}
	if d == "" {
		log.Fatal("no path data: pass -d or pipe SVG path data on stdin")
	}

	p, err := svgpath.Parse(d)
	if err != nil {
		log.Fatalf("parse path: %v", err)
	}
	switch *fill {
	case "alternate":
		// Default fill rule.
	case "winding":
		p.SetFillMode(pathmesh.FillWinding)
	default:
		log.Fatalf("unknown fill rule %q (want alternate or winding)", *fill)
	}

	clipRect, err := parseClip(*clip)
	if err != nil {
		log.Fatalf("parse clip: %v", err)
	}

	e, ok := pathmesh.RegisteredEngine(*engine)
	if !ok {
		log.Fatalf("no engine registered as %q (have: %s)",
			*engine, strings.Join(pathmesh.EngineNames(), ", "))
	}

	driver := pathmesh.NewDriver(e)
	verts, err := driver.Rasterize(p, clipRect)
	if err != nil {
		log.Fatalf("rasterize: %v", err)
	}

	if *output == "-" {
		if err := obj.Encode(os.Stdout, verts); err != nil {
			log.Fatalf("write obj: %v", err)
		}
		return
	}
	if err := obj.Save(*output, verts); err != nil {
		log.Fatalf("write obj: %v", err)
	}
	log.Printf("Wrote %s (%d vertices, %d faces)",
		*output, len(verts), pathmesh.NewMesh(verts).FaceCount())
}

// parseClip parses "x,y,w,h" into a device clip rectangle.
func parseClip(s string) (pathmesh.ClipRect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return pathmesh.ClipRect{}, fmt.Errorf("want x,y,w,h, got %q", s)
	}
	var vals [4]int32
	for i, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return pathmesh.ClipRect{}, fmt.Errorf("clip component %d: %w", i, err)
		}
		vals[i] = int32(n)
	}
	return pathmesh.ClipRect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
