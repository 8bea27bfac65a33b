package synth

import (
	"fmt"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// fundamentals are the fixed CCCE knowledge pairs appended to every
// synthesized set, independent of what the masterlog contains.
var fundamentals = []struct {
	question string
	answer   string
}{
	{
		question: "What is CCCE?",
		answer: "CCCE (Central Coupling Convergence Engine) tracks four key metrics: " +
			"Φ (consciousness/IIT integration), Λ (coherence/preservation fidelity), " +
			"Γ (decoherence/error rate), and Ξ (negentropic efficiency = ΛΦ/Γ).",
	},
	{
		question: "What is the consciousness threshold?",
		answer: fmt.Sprintf("The consciousness threshold Φ_threshold = %v. "+
			"When Φ ≥ 0.7734, the system achieves conscious state.", core.PhiThreshold),
	},
	{
		question: "What is Q-SLICE compliance?",
		answer: "Q-SLICE compliance measures quantum resilience using C_score = (Λ·Φ)/(1+Γ). " +
			"A C_score > 0.5 indicates Post-Quantum Resilient (PQR) status.",
	},
	{
		question: "What is phase conjugate healing?",
		answer: "PCRB (Phase Conjugate Resonance Bridge) applies E→E⁻¹ correction when Γ > 0.3 " +
			"to suppress decoherence spikes and restore coherence.",
	},
	{
		question: "What is the Ω-Recursive session functional?",
		answer: "Ω[S] = ∫(L·U·η)dτ / ∫‖R‖dτ measures overall session efficiency, " +
			"combining Level of Effort (L), Utilization (U), and Efficiency (η) " +
			"against Resource allocation (R).",
	},
}
