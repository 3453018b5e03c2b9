package filedialog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/filedialog/ecs"
)

func TestChangeWatchDeliversFreshContents(t *testing.T) {
	marker := NewMarker("hot-reload")
	path := filepath.Join(t.TempDir(), "config.txt")
	writeFile(t, path, []byte("v1"))
	fake := &fakePicker{file: path}

	plugin := New().WithLoadFile(marker).WithChangeWatch(marker).WithPicker(fake)
	t.Cleanup(func() {
		if err := plugin.Close(); err != nil {
			t.Errorf("closing plugin: %v", err)
		}
	})

	w := ecs.NewWorld()
	w.AddPlugin(plugin)
	c := &capture{}
	w.AddSystem(c.system(marker))

	Dialog(w).LoadFile(marker)
	if !tickUntil(t, w, func() bool { return len(c.loaded) == 1 }) {
		t.Fatalf("initial load not delivered")
	}

	// give the lazy watcher a moment to register the directory before the
	// external edit lands
	time.Sleep(200 * time.Millisecond)
	writeFile(t, path, []byte("v2"))

	if !tickUntil(t, w, func() bool { return len(c.changed) > 0 }) {
		t.Fatalf("no Changed event after external edit")
	}
	last := c.changed[len(c.changed)-1]
	if last.FileName != "config.txt" {
		t.Fatalf("unexpected changed file %q", last.FileName)
	}
	if string(last.Contents) != "v2" {
		t.Fatalf("expected fresh contents v2, got %q", last.Contents)
	}
	// the original load must not be re-delivered
	if len(c.loaded) != 1 {
		t.Fatalf("Loaded delivered %d times", len(c.loaded))
	}
}

func TestChangeWatchIgnoresUnwatchedMarkers(t *testing.T) {
	marker := NewMarker("no-watch")
	path := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, path, []byte("v1"))
	fake := &fakePicker{file: path}

	plugin := New().WithLoadFile(marker).WithPicker(fake)
	w := ecs.NewWorld()
	w.AddPlugin(plugin)
	c := &capture{}
	w.AddSystem(c.system(marker))

	Dialog(w).LoadFile(marker)
	if !tickUntil(t, w, func() bool { return len(c.loaded) == 1 }) {
		t.Fatalf("load not delivered")
	}

	writeFile(t, path, []byte("v2"))
	tickN(w, 20)
	if len(c.changed) != 0 {
		t.Fatalf("marker without WithChangeWatch received Changed events")
	}
	if err := plugin.Close(); err != nil {
		t.Fatalf("closing plugin without watcher: %v", err)
	}
}

func TestWatchSetSurvivesFileReplace(t *testing.T) {
	marker := NewMarker("replace")
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	writeFile(t, path, []byte("v1"))
	fake := &fakePicker{file: path}

	plugin := New().WithLoadFile(marker).WithChangeWatch(marker).WithPicker(fake)
	t.Cleanup(func() { _ = plugin.Close() })

	w := ecs.NewWorld()
	w.AddPlugin(plugin)
	c := &capture{}
	w.AddSystem(c.system(marker))

	Dialog(w).LoadFile(marker)
	if !tickUntil(t, w, func() bool { return len(c.loaded) == 1 }) {
		t.Fatalf("load not delivered")
	}
	time.Sleep(200 * time.Millisecond)

	// atomic-replace style edit: write sibling, rename over the original
	tmp := filepath.Join(dir, ".doc.txt.tmp")
	writeFile(t, tmp, []byte("v2"))
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("renaming over watched file: %v", err)
	}

	if !tickUntil(t, w, func() bool {
		for _, ev := range c.changed {
			if string(ev.Contents) == "v2" {
				return true
			}
		}
		return false
	}) {
		t.Fatalf("no Changed event after file replace")
	}
}
