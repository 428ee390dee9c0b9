// Package render turns alignment batches into human-viewable output.
//
// Two renderers consume the batch contract (the color/text matrices plus
// each record's insertion runs):
//   - Terminal: styled text for a TTY, one cell per column, with
//     "+<len>@<pos>" markers for collapsed insertion runs.
//   - Image: a raster grid with per-cell colors, drawn symbols, and
//     insertion badges, optionally PNG-encoded.
//
// Both are pure functions of the batch; neither mutates it.
package render
