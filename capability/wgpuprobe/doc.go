// Package wgpuprobe provides a GPU capability probe backed by
// gogpu/wgpu adapter inspection.
//
// The probe is opt-in via blank import:
//
//	import _ "github.com/gogpu/governor/capability/wgpuprobe"
//
// On import it registers itself under the "wgpu" name, outranking the
// CPU-only host probe. If no adapter can be obtained the probe returns
// an error and capability detection degrades to conservative defaults.
package wgpuprobe
