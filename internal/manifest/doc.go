// Package manifest reads and writes variant definition documents.
//
// A document is INI text in the variant engine's dialect:
//
//	# Antichess and atomic combined.
//	[antiatomic:atomic]
//	mustCapture = true
//	extinctionPieceTypes = *
//
// Each section names a new variant and, after the colon, the variant it
// inherits from. The base is either built into the engine or defined by an
// earlier section of the same document. Option lines override the base's
// rules; blank lines and lines starting with # or ; are ignored, except that
// comment lines directly above a header are kept as that section's comment.
//
// # Inheritance
//
// Resolve flattens a section and its chain of document-defined ancestors into
// a single option map, with the child's values replacing the parent's:
//
//	[a:giveaway]        castling = false
//	[b:a]               pocketSize = 6
//
// resolves b to {castling: false, pocketSize: 6} on top of giveaway.
package manifest
