package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAggregateWindow(t *testing.T) {
	c := NewCollector(100, 1.0/60.0, nil, false)
	for i := 1; i <= 5; i++ {
		c.Record(Sample{Alive: i * 10, Emitted: 2, Dropped: 1, StepMillis: float64(i)})
	}

	ws := c.aggregate()
	if ws.WindowEndTick != 5 {
		t.Errorf("WindowEndTick = %d, want 5", ws.WindowEndTick)
	}
	if math.Abs(ws.AliveMean-30) > 1e-9 {
		t.Errorf("AliveMean = %v, want 30", ws.AliveMean)
	}
	if ws.AliveP50 != 30 {
		t.Errorf("AliveP50 = %v, want 30", ws.AliveP50)
	}
	if ws.Emitted != 10 || ws.Dropped != 5 {
		t.Errorf("Emitted = %d, Dropped = %d, want 10 and 5", ws.Emitted, ws.Dropped)
	}
	if ws.StepMaxMs != 5 {
		t.Errorf("StepMaxMs = %v, want 5", ws.StepMaxMs)
	}
}

func TestCollectorFlushesFullWindows(t *testing.T) {
	c := NewCollector(3, 1.0/60.0, nil, false)
	for i := 0; i < 7; i++ {
		c.Record(Sample{Alive: 1})
	}
	// Two full windows flushed; one partial sample remains.
	if len(c.alive) != 1 {
		t.Errorf("buffered samples = %d, want 1", len(c.alive))
	}
	if c.tick != 7 {
		t.Errorf("tick = %d, want 7", c.tick)
	}
}

func TestFlushEmptyWindowIsNoOp(t *testing.T) {
	c := NewCollector(10, 1.0/60.0, nil, false)
	c.Flush() // must not divide by zero or write anything
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 300, Emitted: 64}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 600, Emitted: 32}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("missing header: %q", lines[0])
	}
	if strings.Contains(lines[2], "window_end") {
		t.Error("header repeated on second record")
	}
}

func TestNilOutputManagerDiscards(t *testing.T) {
	var om *OutputManager
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil WriteTelemetry = %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close = %v", err)
	}
}
