// Package lod exposes per-component level-of-detail settings for each
// performance tier: instance counts, geometry complexity, shadow map
// sizes, and animation fidelity.
//
// ShouldRender is the one predicate decorative code must consult before
// instantiating a component; it is always consistent with the tier
// enablement matrix. Unknown component names resolve to "do not render",
// never to an error.
package lod
