// Package governor is an adaptive render quality governor for
// decorative 3D scenery: it scores the visiting device, resolves a
// performance tier, provides per-component level-of-detail settings,
// continuously measures real frame rate with sustained-degradation
// hysteresis, and exposes a single render-or-fallback decision.
//
// # Usage
//
//	import (
//		"github.com/gogpu/governor"
//		"github.com/gogpu/governor/tier"
//
//		_ "github.com/gogpu/governor/capability/wgpuprobe" // GPU probing
//	)
//
//	g := governor.New()
//	g.Start()
//	defer g.Close()
//
//	// Per displayed frame:
//	g.Frame()
//
//	// Before instantiating a decorative component:
//	d := g.Decide(tier.ComponentCandles)
//	if d.RenderRich {
//		spawnCandles(d.Settings.InstanceCount, d.Settings)
//	} else {
//		showFallback(d.Reason)
//	}
//
// Decisions are level-triggered and recomputed from current inputs, so
// late-mounting consumers always observe the correct verdict. Push
// updates are available via Subscribe. Nothing in this package panics
// into the rendering call path: probe failures, storage failures, and
// unknown component names all degrade to the safest fallback.
package governor
