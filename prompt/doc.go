// Package prompt assembles chat prompts in the Phi-3 format: a system block
// carrying retrieved knowledge, a trailing window of conversation turns, the
// pending user turn and the assistant cue. Retrieval is delegated to a
// ContextSource so the builder itself never touches an index.
//
// The package renders prompts only. Model loading, inference and serving
// stay out of scope.
package prompt
