// Package index provides an inverted index over knowledge records.
//
// Tokens are produced by lowercasing and splitting on whitespace. Tokens
// shorter than the configured minimum are discarded as noise. Every
// occurrence of a kept token appends the record's ordinal to the token's
// posting list, so duplicate entries carry term frequency. There is no
// stemming and no stop-word list.
//
// An Index is immutable after Build and safe for concurrent reads.
package index
