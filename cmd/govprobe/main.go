// Command govprobe prints the device capability report, the resolved
// performance tier, and the per-component LOD table.
package main

import (
	"flag"
	"fmt"

	"github.com/gogpu/governor/capability"
	"github.com/gogpu/governor/lod"
	"github.com/gogpu/governor/tier"

	// Enable GPU adapter probing.
	_ "github.com/gogpu/governor/capability/wgpuprobe"
)

func main() {
	var (
		score = flag.Int("score", -1, "override the capability score instead of probing")
	)
	flag.Parse()

	var caps capability.Capabilities
	if *score >= 0 {
		caps = capability.Capabilities{Score: *score}
		fmt.Printf("score:     %d (override)\n", caps.Score)
	} else {
		caps = capability.NewDetector().Capabilities()
		fmt.Printf("class:     %s\n", caps.Class)
		fmt.Printf("score:     %d\n", caps.Score)
		fmt.Printf("gpu:       %s (api v%d)\n", orNone(caps.GPUName), caps.GPUVersion)
		fmt.Printf("cores:     %d\n", caps.CPUCores)
		fmt.Printf("memory:    %d MB\n", caps.MemoryMB)
		fmt.Printf("render3d:  %v\n", caps.CanRender3D)
	}

	t := tier.Resolve(caps.Score)
	fmt.Printf("tier:      %s\n", t)

	s := tier.SettingsFor(t)
	fmt.Printf("settings:  shadows=%d textures=%d particles=%d lights=%d aa=%v\n",
		s.ShadowQuality, s.TextureQuality, s.ParticleLevel, s.MaxLights, s.Antialiasing)

	fmt.Println("components:")
	for _, name := range tier.Components() {
		cfg, _ := lod.For(name, t)
		fmt.Printf("  %-10s render=%-5v instances=%-3d detail=%.1f shadows=%v(%d) anim=%.1f interactive=%v\n",
			name, lod.ShouldRender(name, t),
			cfg.InstanceCount, cfg.GeometryDetail,
			cfg.ShadowsEnabled, cfg.ShadowMapSize,
			cfg.AnimationFidelity, cfg.Interactive)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
