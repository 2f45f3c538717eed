// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics is an entirely optional, host-wired-in dashboard over the
// emulation's master clock: tick rate, scanline/frame counters and RIOT
// timer-interrupt counts, served live over HTTP by statsview. Nothing in
// hardware ever imports this package; a frontend that wants the dashboard
// creates a Counters and calls the appropriate Inc method from its own tick
// loop.
package metrics

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Counters accumulates the emulation's headline activity counts. The zero
// value is ready to use. All methods are safe for concurrent use, since a
// host may update them from its tick loop while statsview's HTTP handler
// reads them from another goroutine.
type Counters struct {
	masterTicks    uint64
	scanlines      uint64
	frames         uint64
	riotInterrupts uint64
}

// IncMasterTick records one master clock tick (one CPU cycle, per
// hardware.VCS.tick).
func (c *Counters) IncMasterTick() { atomic.AddUint64(&c.masterTicks, 1) }

// IncScanline records the TIA completing one scanline (one color clock wrap
// at 228).
func (c *Counters) IncScanline() { atomic.AddUint64(&c.scanlines, 1) }

// IncFrame records the TIA reaching a new frame (vsync).
func (c *Counters) IncFrame() { atomic.AddUint64(&c.frames, 1) }

// IncRIOTInterrupt records the RIOT timer's underflow flag being read with
// the interrupt flag set.
func (c *Counters) IncRIOTInterrupt() { atomic.AddUint64(&c.riotInterrupts, 1) }

// MasterTicks returns the running master clock tick count.
func (c *Counters) MasterTicks() uint64 { return atomic.LoadUint64(&c.masterTicks) }

// Scanlines returns the running scanline count.
func (c *Counters) Scanlines() uint64 { return atomic.LoadUint64(&c.scanlines) }

// Frames returns the running frame count.
func (c *Counters) Frames() uint64 { return atomic.LoadUint64(&c.frames) }

// RIOTInterrupts returns the running RIOT timer-interrupt count.
func (c *Counters) RIOTInterrupts() uint64 { return atomic.LoadUint64(&c.riotInterrupts) }

// Server exposes a Counters on a live statsview dashboard. It is never
// started automatically; a host opts in by constructing one and calling
// Start.
type Server struct {
	counters *Counters
	viewer   *statsview.Viewer
}

// NewServer prepares a dashboard server for counters, listening on addr
// (e.g. "localhost:18066") once started.
func NewServer(addr string, counters *Counters) *Server {
	v := statsview.New(
		viewer.WithAddr(addr),
		viewer.WithTimeFormat("15:04:05"),
	)

	viewer.RegisterPlugin(
		viewer.NewCountPlugin("master_ticks", func() int64 { return int64(counters.MasterTicks()) }),
		viewer.NewCountPlugin("scanlines", func() int64 { return int64(counters.Scanlines()) }),
		viewer.NewCountPlugin("frames", func() int64 { return int64(counters.Frames()) }),
		viewer.NewCountPlugin("riot_interrupts", func() int64 { return int64(counters.RIOTInterrupts()) }),
	)

	return &Server{counters: counters, viewer: v}
}

// Start runs the dashboard's HTTP server until ctx is cancelled. It never
// returns a nil error on success; callers that only want a fire-and-forget
// server should run it in its own goroutine and log the result.
func (s *Server) Start(ctx context.Context) error {
	go s.viewer.Start()
	<-ctx.Done()
	s.viewer.Stop()
	return fmt.Errorf("metrics: %w", ctx.Err())
}
