package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/swdee/go-walkguide"
	"github.com/swdee/go-walkguide/mask"
	"github.com/swdee/go-walkguide/parser"
	"github.com/swdee/go-walkguide/render"
	"github.com/swdee/go-walkguide/spatial"
)

const (
	frameWidth  = 640
	frameHeight = 480
)

// region describes a detection synthesized from filled rectangles
type region struct {
	classID int
	prob    float32
	rects   []image.Rectangle
}

// scenario is a named set of detections for one frame
type scenario struct {
	name    string
	regions []region
}

var (
	walkAreaFull = region{0, 0.9, []image.Rectangle{image.Rect(0, 240, 640, 480)}}

	scenarios = []scenario{
		{"critical stop", []region{
			walkAreaFull,
			{1, 0.8, []image.Rectangle{image.Rect(300, 400, 340, 460)}},
		}},
		{"veer left, human on right", []region{
			walkAreaFull,
			{2, 0.85, []image.Rectangle{image.Rect(400, 380, 450, 450)}},
		}},
		{"slow down, obstacle mid center", []region{
			walkAreaFull,
			{1, 0.7, []image.Rectangle{image.Rect(300, 300, 340, 350)}},
		}},
		{"clear path", []region{
			walkAreaFull,
		}},
		{"no walk area", []region{
			{1, 0.8, []image.Rectangle{image.Rect(300, 400, 340, 460)}},
		}},
		{"walk area too small", []region{
			{0, 0.9, []image.Rectangle{image.Rect(300, 400, 310, 410)}},
		}},
		{"obstacle on edge", []region{
			walkAreaFull,
			{1, 0.75, []image.Rectangle{image.Rect(580, 300, 620, 350)}},
		}},
	}
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	outDir := flag.String("o", "", "Directory to save rendered scenario PNG files to, rendering is skipped when empty")
	lang := flag.String("lang", "en", "Language of decision messages [en|zh]")
	fontFile := flag.String("font", "", "TrueType font file used to render messages, required for Chinese glyphs")
	confidence := flag.Float64("c", parser.DefaultConfidence, "Minimum detection confidence")
	labelFile := flag.String("l", "", "Text file containing model labels, defaults to walk_area, obstacle, human")

	flag.Parse()

	language, err := walkguide.ParseLanguage(*lang)

	if err != nil {
		log.Fatal("Invalid language: ", err)
	}

	labels := parser.DefaultLabels

	if *labelFile != "" {
		labels, err = parser.LoadLabels(*labelFile)

		if err != nil {
			log.Fatal("Error loading model labels: ", err)
		}
	}

	params := walkguide.DefaultParams()
	params.Language = language

	analyzer := spatial.NewAnalyzer(spatial.DefaultParams())
	engine := walkguide.New(params, analyzer)
	objParser := parser.NewParser(labels)
	pool := mask.NewPool()

	var caption *render.Caption

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			log.Fatal("Error creating output directory: ", err)
		}

		caption, err = render.NewCaption(*fontFile, 18)

		if err != nil {
			log.Fatal("Error loading caption font: ", err)
		}

		defer caption.Close()
	}

	for i, sc := range scenarios {

		fmt.Printf("\n--- Scenario %d: %s ---\n", i+1, sc.name)

		dets := make([]parser.Detection, 0, len(sc.regions))

		for _, r := range sc.regions {
			m := pool.Get(frameWidth, frameHeight)

			for _, rect := range r.rects {
				m.Fill(rect)
			}

			b := m.Bounds()

			dets = append(dets, parser.Detection{
				ClassID:     r.classID,
				Probability: r.prob,
				Box: parser.BoxRect{
					Left: b.Min.X, Top: b.Min.Y, Right: b.Max.X, Bottom: b.Max.Y,
				},
				Mask: m,
			})
		}

		start := time.Now()

		objs, err := objParser.Parse(dets, frameWidth, frameHeight, float32(*confidence))

		if err != nil {
			log.Fatal("Error parsing detections: ", err)
		}

		decision := engine.Decide(objs, frameWidth, frameHeight)

		elapsed := time.Since(start)

		fmt.Println(decision)

		if decision.Details != nil {
			printDetails(decision.Details)
		}

		log.Printf("Decision time=%s\n", elapsed.String())

		if *outDir != "" {
			walk := analyzer.MainWalkArea(objs)
			scene := render.Scene{
				Objects:  objs,
				Decision: decision,
			}

			if walk != nil {
				scene.WalkArea = walk.Mask
				scene.Threats = engine.Threats(objs, walk, frameWidth, frameHeight)
			}

			file := filepath.Join(*outDir, fmt.Sprintf("scenario-%d-%s.png",
				i+1, strings.ReplaceAll(sc.name, " ", "-")))
			file = strings.ReplaceAll(file, ",", "")

			err = render.PaintSceneToFile(file, frameWidth, frameHeight, scene, caption)

			if err != nil {
				log.Fatal("Error rendering scenario: ", err)
			}

			log.Printf("Saved scenario render to %s\n", file)
		}

		// masks are no longer referenced once the frame is decided
		for _, det := range dets {
			pool.Put(det.Mask)
		}
	}
}

// printDetails outputs the decision details to stdout
func printDetails(d *walkguide.Details) {

	if d.Reason != "" {
		fmt.Printf("  Reason: %s\n", d.Reason)
	}

	if d.Rule != "" {
		fmt.Printf("  Rule: %s\n", d.Rule)
	}

	if d.WalkAreaFound {
		fmt.Printf("  Walk area: %d pixels\n", d.WalkAreaArea)
	}

	if t := d.Threat; t != nil {
		fmt.Printf("  Threat: %s #%d score=%d %s %s %s on_path=%t centroid=(%.1f, %.1f)\n",
			t.Object.Class, t.Object.ID, t.Score, t.Relation, t.Position,
			t.Distance, t.OnPrimaryPath, t.Object.Centroid.X, t.Object.Centroid.Y)
	}
}
