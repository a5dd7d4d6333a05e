// Package measure extracts classical information from a state vector.
//
// Sampling follows the Born rule: basis index i is drawn with probability
// |v[i]|². Draws come from a caller-owned math/rand/v2 Source through
// gonum's distuv.Categorical, so a fixed seed reproduces a run exactly:
//
//	src := measure.NewSource(42)
//	shots, err := measure.Sample(v, 1000, src)
//
// The Sampler is strict: a distribution whose total differs from 1 by more
// than its epsilon is rejected with ErrInvalidDistribution. WithRenormalize
// opts into rescaling any non-zero, finite distribution instead.
//
// The Estimator computes ⟨ψ|O|ψ⟩ for a 2^n x 2^n operator. For Hermitian O
// the value is real; what happens to a non-negligible imaginary part is
// governed by ImaginaryPolicy (WarnImaginary by default).
//
// Sources are not safe for concurrent use; give each goroutine its own,
// for example via DeriveSource.
package measure
