// Package export writes conversion results in their downstream formats.
//
// Four artifacts are produced:
//   - Bundle: the full conversion report as indented JSON, carrying
//     metadata, statistics and extraction results alongside the training
//     records.
//   - Alpaca: instruction-tuning examples for fine-tuning tools.
//   - Modelfile: an Ollama Modelfile whose SYSTEM block embeds the top
//     knowledge pairs for prompt-injected domain knowledge.
//   - Batch runs: concurrent conversion of many masterlogs via a worker
//     pool, one synchronous conversion per file.
package export
