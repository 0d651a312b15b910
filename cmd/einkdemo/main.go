// Command einkdemo renders the sample e-paper pages to PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/gogpu/eink"
)

const sunIcon = `<svg width="48" height="48" viewBox="0 0 48 48" xmlns="http://www.w3.org/2000/svg">
  <circle cx="24" cy="24" r="10" fill="black"/>
  <line x1="24" y1="0" x2="24" y2="10" stroke="black" stroke-width="2"/>
  <line x1="24" y1="38" x2="24" y2="48" stroke="black" stroke-width="2"/>
  <line x1="0" y1="24" x2="10" y2="24" stroke="black" stroke-width="2"/>
  <line x1="38" y1="24" x2="48" y2="24" stroke="black" stroke-width="2"/>
</svg>`

var pages = map[string]func(c *eink.Canvas) error{
	"dashboard": dashboardPage,
	"layout":    layoutPage,
	"graph":     graphPage,
	"donut":     donutPage,
}

func main() {
	var (
		width   = flag.Int("width", 250, "panel width")
		height  = flag.Int("height", 122, "panel height")
		fonts   = flag.String("fonts", "pic", "directory holding Font.ttc")
		output  = flag.String("output", "einkdemo.png", "output file")
		rotate  = flag.Int("rotate", 180, "clockwise panel rotation: 0, 90, 180 or 270")
		page    = flag.String("page", "dashboard", "page to render: dashboard, layout, graph or donut")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		eink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	render, ok := pages[*page]
	if !ok {
		log.Fatalf("Unknown page %q", *page)
	}
	orientation, err := parseRotation(*rotate)
	if err != nil {
		log.Fatal(err)
	}

	c := eink.NewCanvas(*width, *height, *fonts)
	if err := render(c); err != nil {
		log.Fatalf("Failed to render %s: %v", *page, err)
	}

	dev := &eink.PNGDevice{Path: *output, Rotation: orientation}
	if err := c.Show(dev); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Page %s saved to %s (%dx%d, rotated %s)\n", *page, *output, *width, *height, orientation)
}

func parseRotation(deg int) (eink.Orientation, error) {
	o := []eink.Orientation{eink.Rotate0, eink.Rotate90, eink.Rotate180, eink.Rotate270}
	i := slices.IndexFunc(o, func(o eink.Orientation) bool { return o.String() == strconv.Itoa(deg) })
	if i < 0 {
		return 0, fmt.Errorf("unsupported rotation %d", deg)
	}
	return o[i], nil
}

// add draws every widget in order and stops at the first error.
func add(c *eink.Canvas, widgets ...eink.Widget) error {
	for _, w := range widgets {
		if _, err := c.AddWidget(w); err != nil {
			return err
		}
	}
	return nil
}

func dashboardPage(c *eink.Canvas) error {
	sun := eink.NewVectorImage(15, 35, sunIcon)
	sun.Size = image.Pt(40, 40)
	return add(c,
		eink.NewText(10, 5, "Dashboard", eink.WithFontSize(eink.FontLarge)),
		eink.NewText(160, 10, "12:30"),
		sun,
		eink.NewText(70, 40, "22°", eink.WithFontSize(eink.FontXLarge)),
		eink.NewText(10, 85, "CPU:", eink.WithFontSize(eink.FontSmall)),
		eink.NewProgressBar(45, 85, 100, 12, 65),
		eink.NewText(10, 103, "Pump:", eink.WithFontSize(eink.FontSmall)),
		eink.NewStatusIndicator(55, 100, 50, 18, "ON", true, eink.WithFontSize(eink.FontSmall)),
		eink.NewNotchGauge(c.Width()-12, 0, 10, c.Height(), 60),
	)
}

func layoutPage(c *eink.Canvas) error {
	col := eink.NewVerticalLayout(10, 10, 15)
	if err := add(c,
		col.AddSized(eink.NewText(0, 0, "Monitoring", eink.WithFontSize(eink.FontLarge)), 25),
		col.AddSized(eink.NewText(0, 0, "Temperature: 22.5°C"), 20),
		col.AddSized(eink.NewText(0, 0, "Humidity: 65%"), 20),
	); err != nil {
		return err
	}

	bar := eink.NewProgressBar(10, col.CurrentY, 180, 15, 65)
	bar.ShowPercentage = false
	col.CurrentY += 20

	row := eink.NewHorizontalLayout(10, col.CurrentY, 6)
	return add(c,
		bar,
		row.Add(eink.NewStatusIndicator(0, 0, 70, 20, "ONLINE", true, eink.WithFontSize(eink.FontSmall))),
		row.Add(eink.NewStatusIndicator(0, 0, 50, 20, "SYNC", false, eink.WithFontSize(eink.FontSmall))),
	)
}

func graphPage(c *eink.Canvas) error {
	temps := []float64{18, 17, 16, 15, 15, 16, 18, 20, 22, 24, 25, 26,
		27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 18, 17}
	lo, hi := slices.Min(temps), slices.Max(temps)
	small := eink.WithFontSize(eink.FontSmall)

	return add(c,
		eink.NewText(10, 5, "Temperature 24h"),
		eink.NewLineGraph(10, 30, 200, 70, temps).WithRange(10, 30),
		eink.NewText(10, 105, fmt.Sprintf("Min: %.0f°", lo), small),
		eink.NewText(80, 105, fmt.Sprintf("Max: %.0f°", hi), small),
		eink.NewText(150, 105, fmt.Sprintf("Now: %.0f°", temps[len(temps)-1]), small),
	)
}

func donutPage(c *eink.Canvas) error {
	chart := eink.NewDonutChart(c.Width()/2, c.Height()/2+4, 70,
		[]float64{45, 25, 20, 10},
		[]string{"CPU", "RAM", "Disk", "Net"})
	return add(c,
		eink.NewText(5, 2, "Resources", eink.WithFontSize(eink.FontSmall)),
		chart,
	)
}
