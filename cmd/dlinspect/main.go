// Command dlinspect records a demo display list and prints what the
// recording engine made of it: the op listing, bounds, group opacity
// compatibility, R-tree query hits and the mesh wire sizes.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/displaylist"
	"github.com/gogpu/displaylist/cache"
	"github.com/gogpu/displaylist/geom"
	"github.com/gogpu/displaylist/paint"
	"github.com/gogpu/displaylist/text"
	"github.com/gogpu/displaylist/vertices"
)

func main() {
	var (
		query   = flag.String("query", "0,0,120,120", "culled replay query as left,top,right,bottom")
		width   = flag.Float64("width", 800, "cull width")
		height  = flag.Float64("height", 600, "cull height")
		verbose = flag.Bool("v", false, "log builder warnings to stderr")
	)
	flag.Parse()

	if *verbose {
		displaylist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var l, t, r, b float64
	if _, err := fmt.Sscanf(*query, "%g,%g,%g,%g", &l, &t, &r, &b); err != nil {
		log.Fatalf("Invalid -query %q: %v", *query, err)
	}
	q := geom.LTRB(l, t, r, b)

	shaper, err := text.NewShaper(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	label := shaper.Shape("displaylist", 24, di.DirectionLTR, geom.Pt(20, 560))

	cull := geom.XYWH(0, 0, *width, *height)
	dl := record(cull, label)

	fmt.Printf("ops:          %d (%d render, %d nested)\n", dl.OpCount(false), dl.RenderOpCount(), dl.OpCount(true))
	fmt.Printf("bytes:        %d\n", dl.ByteSize())
	fmt.Printf("bounds:       %v\n", dl.Bounds())
	fmt.Printf("group alpha:  %v\n", dl.CanApplyGroupOpacity())
	fmt.Printf("fingerprint:  %016x\n", dl.Fingerprint())
	printMesh(mesh())
	fmt.Println()

	listOps(dl)
	fmt.Println()

	fmt.Printf("rtree query %v: ops %v\n", q, dl.RTree().Search(q))
	fmt.Printf("consolidated: %v\n", dl.RTree().SearchAndConsolidateRects(q, true))
	culled := &counter{}
	dl.DispatchCulled(culled, q)
	fmt.Printf("culled replay: %d draws of %d\n", culled.draws, dl.RenderOpCount())
	fmt.Println()

	c := cache.New(0)
	first := c.Intern(dl)
	again := c.Intern(record(cull, label))
	fmt.Printf("cache: re-recorded list interned to first instance: %v (%+v)\n", first == again, c.Stats())
}

// record builds the demo scene.
func record(cull geom.Rect, label *text.Blob) *displaylist.DisplayList {
	b := displaylist.NewBuilder(displaylist.WithCullRect(cull), displaylist.WithRTree())

	b.SetColor(paint.ARGB(0xff, 0x20, 0x30, 0x40))
	b.DrawPaint()

	// A translucent layer of disjoint tiles can take its alpha per draw.
	layer := paint.New(paint.Black.WithAlpha(0x80))
	b.SaveLayer(nil, &layer, nil)
	for i := range 4 {
		b.SetColor(paint.ARGB(0xff, uint8(60*i), 0x80, 0xc0))
		b.DrawRect(geom.XYWH(float64(20+110*i), 20, 100, 100))
	}
	b.Restore()

	// Redundant saves around pure state changes leave no trace.
	b.Save()
	b.Save()
	b.Translate(10, 10)
	b.Restore()
	b.Restore()

	b.Save()
	b.Translate(20, 160)
	b.SetDrawStyle(paint.StyleStroke)
	b.SetStrokeWidth(6)
	b.SetStrokeJoin(paint.JoinRound)
	b.DrawOval(geom.XYWH(0, 0, 200, 120))
	b.Restore()

	b.SetDrawStyle(paint.StyleFill)
	b.DrawVertices(mesh(), paint.BlendModulate)

	b.SetColor(paint.White)
	b.DrawTextBlob(label, 0, 0)

	inner := displaylist.NewBuilder()
	inner.SetColor(paint.White)
	inner.DrawCircle(geom.Pt(40, 40), 30)
	b.Save()
	b.Translate(600, 400)
	b.DrawDisplayList(inner.Build(), 0.5)
	b.Restore()

	return b.Build()
}

func mesh() *vertices.Vertices {
	vb := vertices.NewBuilder(vertices.Triangles, 4, 6, vertices.HasColors)
	vb.StorePositions([]vertices.Point{{X: 300, Y: 300}, {X: 500, Y: 300}, {X: 500, Y: 450}, {X: 300, Y: 450}})
	vb.StoreColors([]paint.Color{paint.Red, paint.Green, paint.Blue, paint.White})
	vb.StoreIndices([]uint16{0, 1, 2, 0, 2, 3})
	return vb.Build()
}

func printMesh(v *vertices.Vertices) {
	raw, err := v.MarshalBinary()
	if err != nil {
		log.Fatalf("Failed to encode mesh: %v", err)
	}
	back, err := vertices.DecodeCompressed(v.EncodeCompressed())
	if err != nil {
		log.Fatalf("Failed to decode mesh: %v", err)
	}
	fmt.Printf("mesh:         %d vertices, %d bytes raw, %d bytes s2, round trip %v\n",
		v.VertexCount(), len(raw), len(v.EncodeCompressed()), back.Equals(v))
}

func listOps(dl *displaylist.DisplayList) {
	depth := 0
	for i, op := range dl.Ops() {
		k := op.Kind()
		if k == displaylist.OpRestore && depth > 0 {
			depth--
		}
		fmt.Printf("%4d  %s%s\n", i, strings.Repeat("  ", depth), k)
		if k == displaylist.OpSave || k == displaylist.OpSaveLayer {
			depth++
		}
	}
}

// counter counts the draws a culled replay delivers.
type counter struct {
	displaylist.IgnoreAttributes
	displaylist.IgnoreState
	displaylist.IgnoreTransforms
	displaylist.IgnoreClips
	displaylist.IgnoreDraws

	draws int
}

func (c *counter) SaveLayer(geom.Rect, displaylist.SaveLayerOptions, *paint.Paint, paint.ImageFilter) {
	c.draws++
}

func (c *counter) DrawPaint()                                        { c.draws++ }
func (c *counter) DrawRect(geom.Rect)                                { c.draws++ }
func (c *counter) DrawOval(geom.Rect)                                { c.draws++ }
func (c *counter) DrawVertices(*vertices.Vertices, paint.BlendMode)  { c.draws++ }
func (c *counter) DrawDisplayList(*displaylist.DisplayList, float64) { c.draws++ }
func (c *counter) DrawTextBlob(*text.Blob, float64, float64)         { c.draws++ }
