// Package elastica simulates a cubic Bézier curve whose two interior control
// points hang on spring-dampers and chase the pointer, with a decorative
// particle system riding along. It is the simulation core of a curve toy:
// rendering and frame pacing stay outside, typically in [Ebitengine].
//
// # Quick start
//
// Create a [Sim], feed it pointer events, and call [Sim.Tick] once per frame
// from your ebiten.Game:
//
//	type Game struct {
//		sim *elastica.Sim
//		ren *elastica.Renderer
//	}
//
//	func (g *Game) Update() error {
//		x, y := ebiten.CursorPosition()
//		g.sim.OnPointerMove(float64(x), float64(y))
//		g.sim.Tick()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.ren.Draw(screen, g.sim) }
//
// # Simulation model
//
// Each tick, every movable control point is pulled toward a target — its
// rest-pose position displaced by the pointer's offset from the surface
// center and by the pointer's velocity — with Hooke's-law force, damped
// explicit-Euler integration, and an inelastic clamp against the surface
// edges. Pressing near a movable point grabs it, suspending the spring and
// handing the position to the pointer until release.
//
// Physics feel is tuned by [Params] and the named [Preset] configurations;
// [Sim.TransitionPreset] eases between presets via [gween].
//
// A Sim is not safe for concurrent use. Mutate it and tick it from one
// goroutine — the ebiten update loop is the natural place.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package elastica
