// Package dock is a headless rendering and interaction engine for a
// bottom-of-screen application dock.
//
// A [Dock] owns the item list, the decoded icons, the animation state and an
// ARGB [Surface]. The host feeds it pointer events, cursor samples and a
// clock, and receives intents such as launches, tooltips and context menus
// through the [Host] interface. The host uploads the surface and moves its
// window to [Dock.DesiredX] and [Dock.DesiredY] after every tick.
//
// # Quick start
//
//	d := dock.NewDock(dock.DefaultSettings(), items, host)
//	d.SetScreen(1920, 1080)
//	for {
//		d.Tick(time.Now())
//		// upload d.Surface(), move the window
//		time.Sleep(d.FrameInterval())
//	}
//
// The ebitenhost package provides a ready-made window and loop built on
// [Ebitengine].
//
// # Rendering
//
// Each tick redraws the whole surface: a rounded glass background, then every
// item at its magnified size with glow and running indicator, a reflection
// under each icon, and finally the dragged item under the pointer. Icons are
// decoded once at an oversampled resolution into an [IconCache] and scaled
// with bicubic sampling per frame.
//
// # Interaction
//
// Hovering magnifies nearby icons with a cosine wave. A click launches the
// item and bounces its icon (via [gween]). Pressing and moving more than
// [Settings.DragThreshold] pixels starts a reorder drag unless the dock is
// locked. The secondary button opens a context menu whose [Action] the dock
// applies or forwards.
//
// With auto-hide on, the dock slides off screen after [Settings.HideDelay]
// once the pointer leaves, and returns when the cursor touches the bottom
// edge of the screen.
//
// Events are available to an [EventSink], for example the [Donburi] adapter
// in dock/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package dock
