// Package synth turns a corpus into instruction/response knowledge records.
//
// The Synthesizer derives one record per qualifying section, equation and
// organism, then appends the fixed CCCE fundamentals so every training set
// covers the platform's core concepts. All records carry the configured
// system prompt and a content-hash Id.
package synth
