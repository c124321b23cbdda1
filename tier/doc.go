// Package tier resolves a device capability score into one of three
// performance tiers and exposes the per-tier component-enablement matrix
// and rendering-settings bundle.
//
// Tier bands are fixed, contiguous, and exhaustive: every score in
// [0,100] maps to exactly one tier. A tier is never stored independently;
// it is always derivable from the capability score via Resolve.
package tier
