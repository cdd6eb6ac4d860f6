package main

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"shiftscan/pkg/extract"
)

// watchLoop processes new timesheet scans dropped into a directory with
// the local OCR provider. Create events are debounced until the file has
// been stable for a moment, so half-written scans are not picked up.
// Non-interactive: each file gets its summary printed and the loop moves on.
func watchLoop(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("Watching %s for new timesheet scans ...", dir)

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == fsnotify.Create && isSupportedExt(ev.Name) {
				pending[ev.Name] = time.Now()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case now := <-ticker.C:
			for path, t := range pending {
				if now.Sub(t) > 300*time.Millisecond { // stable
					delete(pending, path)
					processWatched(ctx, path)
				}
			}
		}
	}
}

func processWatched(ctx context.Context, path string) {
	log.Printf("Processing %s", path)
	cells, err := extract.NewTesseract(path).ExtractCells(ctx)
	if err != nil {
		warn.Printf("skipping %s: %v\n", path, err)
		return
	}
	sheet := buildSheet(cells)
	printDiagnostics(sheet)
	printSummary(sheet)
}

func isSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return true
	}
	return false
}
