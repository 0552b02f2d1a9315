// Package diff computes and renders the public-API delta between two
// release catalogs.
//
// Pipeline:
//  1. Set-difference of the uid sets, both directions
//  2. Suppress members whose containing type is itself wholly new or
//     removed (the type-level entry already implies them)
//  3. Render a grouped Markdown report, deterministic for a given pair
//     of catalogs
//  4. Write the report into the new release and link it from the TOC
package diff
