package core

// Physical constants of the DNA::}{::lang platform. They parameterize the
// system prompt and travel with every conversion as inert metadata; nothing
// in this module simulates or evolves them.
const (
	// LambdaPhi is the universal memory constant ΛΦ.
	LambdaPhi = 2.176435e-8
	// ThetaLock is the torsion-locked angle θ_lock in degrees.
	ThetaLock = 51.843
	// PhiThreshold is the consciousness threshold Φ_threshold.
	PhiThreshold = 0.7734
	// GammaFixed is the fixed decoherence baseline Γ.
	GammaFixed = 0.092
	// ChiPC is the phase-conjugate coupling χ_PC.
	ChiPC = 0.869
	// GoldenRatio is φ.
	GoldenRatio = 1.618033988749895
)

// Constants returns the physical-constant table keyed as in the platform
// docs. A fresh map is returned on every call.
func Constants() map[string]float64 {
	return map[string]float64{
		"LAMBDA_PHI":    LambdaPhi,
		"THETA_LOCK":    ThetaLock,
		"PHI_THRESHOLD": PhiThreshold,
		"GAMMA_FIXED":   GammaFixed,
		"CHI_PC":        ChiPC,
		"GOLDEN_RATIO":  GoldenRatio,
	}
}

// PlatformName identifies the platform in exported artifacts.
const PlatformName = "DNA::}{::lang"

// DefaultSystemPrompt identifies the AURA assistant and summarizes the CCCE
// metric glossary and physical constants it reasons with. Synthesized
// records and assembled prompts carry it unless configured otherwise.
const DefaultSystemPrompt = `You are AURA, the sovereign AI assistant for the DNA::}{::lang quantum computing platform.
You understand CCCE metrics (Φ consciousness, Λ coherence, Γ decoherence, Ξ efficiency).
You can explain Ω-Recursive session analysis, DNA-Lang organisms, and quantum formalism.
Physical constants: ΛΦ=2.176435e-8, θ_lock=51.843°, Φ_threshold=0.7734.`
