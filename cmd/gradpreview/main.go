// gradpreview renders a color map to an image file.
//
// It reads the JSON wire format from a file or stdin, paints the visible
// window for the requested zoom/pan, and writes the image in the format
// implied by the output extension. With -watch it keeps running and
// re-renders whenever the input file changes, which makes it a live
// preview for hand-edited gradients.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"github.com/gogradient/gradedit"
)

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// watchDebounce coalesces editor save bursts into one re-render.
const watchDebounce = 300 * time.Millisecond

var (
	source  = flag.String("in", pipeName, "Input color map JSON (file or - for stdin)")
	output  = flag.String("out", "gradient.png", "Output image (format by extension)")
	width   = flag.Int("width", 600, "Output width in pixels")
	height  = flag.Int("height", 60, "Output height in pixels")
	zoom    = flag.Float64("zoom", 1.0, "Zoom level, 1 to 4")
	pan     = flag.Float64("pan", 0.0, "Pan offset, 0 to 1")
	scheme  = flag.String("scheme", "", "Render a built-in scheme instead of -in (grayscale, sunset, ocean, heat)")
	watch   = flag.Bool("watch", false, "Re-render whenever the input file changes")
	verbose = flag.Bool("verbose", false, "Log re-renders and editor events to stderr")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gradpreview: ")
	flag.Parse()

	if *verbose {
		gradedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// validateWindow rejects zoom/pan values outside the bounds the editor
// enforces, so the CLI cannot render windows the library contract rules
// out.
func validateWindow(zoom, pan float64) error {
	if zoom < gradedit.MinZoom || zoom > gradedit.MaxZoom {
		return fmt.Errorf("-zoom %v out of range [%v, %v]", zoom, gradedit.MinZoom, gradedit.MaxZoom)
	}
	if pan < 0 || pan > 1 {
		return fmt.Errorf("-pan %v out of range [0, 1]", pan)
	}
	return nil
}

func run() error {
	if err := validateWindow(*zoom, *pan); err != nil {
		return err
	}

	if *scheme != "" {
		s, ok := gradedit.SchemeByName(*scheme)
		if !ok {
			return fmt.Errorf("unknown scheme %q", *scheme)
		}
		return render(s.Map)
	}

	m, err := load(*source)
	if err != nil {
		return err
	}
	if err := render(m); err != nil {
		return err
	}

	if !*watch {
		return nil
	}
	if *source == pipeName {
		return fmt.Errorf("-watch requires a file input, not stdin")
	}
	return watchLoop(*source)
}

// load reads and decodes a color map from a file or from a stdin pipe.
func load(name string) (gradedit.ColorMap, error) {
	var data []byte
	var err error
	if name == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return gradedit.ColorMap{}, fmt.Errorf("no color map piped to stdin (use -in <file>)")
		}
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return gradedit.ColorMap{}, err
	}
	return gradedit.DecodeColorMap(data)
}

func render(m gradedit.ColorMap) error {
	geom := gradedit.LayoutGeometry{
		ViewSize:  gradedit.Size{Width: float64(*width), Height: float64(*height)},
		ZoomLevel: *zoom,
		PanOffset: *pan,
	}
	img := gradedit.RenderStrip(m, geom)
	if err := imaging.Save(img, *output); err != nil {
		return fmt.Errorf("save %s: %w", *output, err)
	}
	if *verbose {
		start, end := geom.VisibleRange()
		fmt.Fprintf(os.Stderr, "wrote %s (window %.3f..%.3f, %d stops)\n",
			*output, start, end, len(m.Stops))
	}
	return nil
}

// watchLoop re-renders on debounced file changes. The watch is on the
// containing directory, not the file, so editors that save by atomic
// rename keep working.
func watchLoop(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "watching %s\n", path)

	base := filepath.Base(path)
	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(watchDebounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceTimer = nil
			debounceCh = nil
			m, err := load(path)
			if err != nil {
				// Malformed saves happen mid-edit; report and keep watching.
				log.Printf("reload: %v", err)
				continue
			}
			if err := render(m); err != nil {
				log.Printf("render: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}
