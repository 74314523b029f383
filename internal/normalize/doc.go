// Package normalize canonicalizes decoded code point sequences before n-gram
// extraction.
//
// The Canonical normalizer folds East Asian width variants, composes
// canonical equivalents (NFC), maps whole blocks onto representative code
// points so that n-grams generalize across a script, and collapses runs of
// separators. It only rewrites or removes code points; the relative order of
// the survivors never changes.
package normalize
