// Package holocard is a pointer, touch and device-orientation fused 3D card
// interaction engine.
//
// An [Engine] turns heterogeneous spatial input into one coherent tilt
// transform plus two lighting overlays: a radial glare that follows the
// light's hot point and an angled shine sweep. Each interactive card owns one
// engine instance.
//
// # Quick start
//
//	eng := holocard.NewEngine(holocard.DefaultConfig(), env, surface)
//	eng.Subscribe(func(s holocard.Snapshot) {
//		// apply s.Effect.Transform, s.Effect.Glare, s.Effect.Shine
//	})
//
//	// from the host's event handlers:
//	eng.PointerEnter()
//	eng.PointerMove(x, y)
//	eng.PointerLeave()
//
//	// once per frame:
//	eng.Update(dt)
//
// # Pipeline
//
// Every accepted input goes through the same steps: the capability gate
// decides whether the source is usable on this device ([Classify]), [Sample]
// converts the raw reading into a [TiltState], and [Compose] maps the tilt to
// an [EffectDescriptor]. The engine keeps only the latest descriptor and
// publishes it to subscribers when it changes.
//
// # Orientation permission
//
// Some mobile browsers only deliver orientation readings after an explicit,
// gesture-initiated permission grant. On such platforms the engine arms a
// one-shot document touch listener ([Engine.DocumentTouch]); the first touch
// asks the [PermissionRequester] and the answer moves the engine from
// [PermissionPending] to [PermissionGranted] or [PermissionDenied] exactly once.
//
// The Ebitengine host, renderer and scripted-input tooling live in the
// cardview subpackage.
package holocard
