// Package textkit is a small toolkit of byte-oriented text algorithms, split into independent
// packages:
//
//   - wildcard: glob-style matching with '*' and '?', case-sensitive or ASCII case-folded,
//     plus ordered rule sets with negation,
//   - tokenize: quote-aware splitting of lines into pieces, arguments and ';'-separated commands,
//   - similarity: edit distance, similarity score, longest common substring and ranked
//     "did you mean" suggestions,
//   - pathkey: a case-insensitive, slash-normalizing hash and equality for path-like keys, with
//     a map and set keyed by them.
//
// The console package combines them into a small command interpreter, and cmd/textkit exposes
// everything on the command line.
//
// All algorithms work on bytes. Case folding only affects ASCII letters; other bytes, including
// the parts of multi-byte UTF-8 sequences, are compared as-is.
package textkit
