// Package corpus assembles extraction results into a single corpus per
// masterlog source.
//
// The Builder type runs the four extraction families over raw text in one
// synchronous pass and collects:
//   - Numbered and symbolic equations
//   - CCCE metric readings, deduplicated by symbol
//   - DNA-Lang organism definitions
//   - Bordered report sections
//
// The resulting Corpus also carries raw extraction statistics. A Corpus is
// immutable after Build and safe for concurrent reads.
package corpus
