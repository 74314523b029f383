// Package textutil summarizes n-gram token streams into frequency profiles.
//
// A Profile counts how often each token occurs, ranks the most frequent ones,
// and compares two profiles with cosine similarity over their raw counts.
// Helpers render the fixed-width binary tokens for display, either as hex or
// as the code points they encode.
package textutil
