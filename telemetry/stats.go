// Package telemetry aggregates per-tick simulation samples into windowed
// statistics and optionally writes them out as CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Sample is one tick's worth of measurements, recorded by the host loop.
type Sample struct {
	Alive      int     // live particles after the tick
	Emitted    int     // particles actually created this tick
	Dropped    int     // burst particles lost to pool exhaustion this tick
	StepMillis float64 // wall time of the simulation step
}

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowEndTick int64   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	AliveMean float64 `csv:"alive_mean"`
	AliveStd  float64 `csv:"alive_std"`
	AliveP10  float64 `csv:"alive_p10"`
	AliveP50  float64 `csv:"alive_p50"`
	AliveP90  float64 `csv:"alive_p90"`

	Emitted int `csv:"emitted"`
	Dropped int `csv:"dropped"`

	StepMeanMs float64 `csv:"step_mean_ms"`
	StepMaxMs  float64 `csv:"step_max_ms"`
}

// Collector buffers samples and flushes a WindowStats every windowTicks.
type Collector struct {
	windowTicks int
	dt          float64

	tick    int64
	alive   []float64
	stepMs  []float64
	emitted int
	dropped int

	out      *OutputManager
	logStats bool
}

// NewCollector creates a collector flushing every windowTicks ticks of dt
// seconds each. out may be nil (no CSV output).
func NewCollector(windowTicks int, dt float64, out *OutputManager, logStats bool) *Collector {
	return &Collector{
		windowTicks: windowTicks,
		dt:          dt,
		alive:       make([]float64, 0, windowTicks),
		stepMs:      make([]float64, 0, windowTicks),
		out:         out,
		logStats:    logStats,
	}
}

// Record adds one tick's sample, flushing a window if it is complete.
func (c *Collector) Record(s Sample) {
	c.tick++
	c.alive = append(c.alive, float64(s.Alive))
	c.stepMs = append(c.stepMs, s.StepMillis)
	c.emitted += s.Emitted
	c.dropped += s.Dropped

	if len(c.alive) >= c.windowTicks {
		c.Flush()
	}
}

// aggregate computes the stats for the buffered window.
func (c *Collector) aggregate() WindowStats {
	sorted := append([]float64(nil), c.alive...)
	sort.Float64s(sorted)

	ws := WindowStats{
		WindowEndTick: c.tick,
		SimTimeSec:    float64(c.tick) * c.dt,
		AliveMean:     stat.Mean(sorted, nil),
		AliveStd:      stat.StdDev(sorted, nil),
		AliveP10:      stat.Quantile(0.10, stat.Empirical, sorted, nil),
		AliveP50:      stat.Quantile(0.50, stat.Empirical, sorted, nil),
		AliveP90:      stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Emitted:       c.emitted,
		Dropped:       c.dropped,
		StepMeanMs:    stat.Mean(c.stepMs, nil),
	}
	for _, v := range c.stepMs {
		if v > ws.StepMaxMs {
			ws.StepMaxMs = v
		}
	}
	return ws
}

// Flush aggregates whatever samples are buffered and resets the window.
// No-op on an empty window.
func (c *Collector) Flush() {
	if len(c.alive) == 0 {
		return
	}

	ws := c.aggregate()

	if c.logStats {
		slog.Info("window stats",
			"window_end", ws.WindowEndTick,
			"sim_time", ws.SimTimeSec,
			"alive_mean", ws.AliveMean,
			"alive_p90", ws.AliveP90,
			"emitted", ws.Emitted,
			"dropped", ws.Dropped,
			"step_mean_ms", ws.StepMeanMs,
		)
	}

	if err := c.out.WriteTelemetry(ws); err != nil {
		slog.Error("writing telemetry window", "error", err)
	}

	c.alive = c.alive[:0]
	c.stepMs = c.stepMs[:0]
	c.emitted = 0
	c.dropped = 0
}
