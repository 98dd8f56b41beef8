// Package cardview hosts holocard engines inside an [Ebitengine] game.
//
// A [Host] polls mouse and touch input once per tick, hit-tests its cards,
// and turns the raw input into engine calls: pointer enter, move and leave
// for the card under the mouse; touch start, move and end for the card a
// finger landed on; a document touch on every engine for the first finger
// anywhere; and orientation readings pushed by the platform layer. Each
// [Card] renders its art through a perspective-projected mesh with glare and
// shine overlays, easing back to rest through a gween-driven [Presenter].
//
// For automation the host accepts synthetic input ([Host.InjectMove],
// [Host.InjectTap], [Host.InjectOrientation], ...) and JSON test scripts
// ([LoadTestScript]) that can capture WebP frames.
//
// [Ebitengine]: https://ebitengine.org
package cardview
