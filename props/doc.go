// Package props implements the typed property layer of the temporal graph.
//
// It provides three things:
//
//   - Prop, a single-tagged variant value (string, signed/unsigned integer,
//     float, boolean, timestamp, list, map). Successive writes to the same
//     property name may carry different variants; each timestamped value
//     keeps its own tag.
//   - Dict, a reference-counted string interner. Property names and edge
//     layer names are interned once per store and referenced by integer id
//     everywhere else.
//   - Cell and Store, the temporal property history of one entity: for every
//     interned name, an ordered run of (timestamp, value) pairs supporting
//     append, as-of lookup, and windowed history.
//
// Errors:
//
//	ErrTypeMismatch - comparison of two Props with incompatible variants.
package props
