// Package unicodeblock classifies code points by Unicode block.
//
// The standard library exposes scripts and categories but not the block
// ranges from Blocks.txt, which the script-bias heuristic and the default
// normalizer key on. Lookups are a binary search over a sorted static table.
package unicodeblock
