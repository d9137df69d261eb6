// Package io provides JSON import and export for boards and simulation
// reports.
//
// # Board Format
//
// A board is an object with its dimensions and a tree of nodes:
//
//	{
//	  "size": 64,
//	  "max_depth": 2,
//	  "root": {
//	    "children": [
//	      {"colour": "Pacific Point"},
//	      {"children": [{"colour": "r"}, {"colour": "r"}, {"colour": "g"}, {"colour": "y"}]},
//	      {"colour": "Old Olive"},
//	      {"colour": "Daffodil Delight"}
//	    ]
//	  }
//	}
//
// A node is either a leaf with a "colour" or a split block with exactly four
// "children" in the order top-right, top-left, bottom-left, bottom-right.
// Colours are written as palette names; on import a name, a palette letter
// or a palette index is accepted.
//
// # Import
//
// Use [ImportBoard] to read a board from a file path, or [ReadBoard] to read
// from any io.Reader. Both validate the tree against the dimensions, so an
// imported board satisfies every invariant of a generated one.
//
// # Export
//
// Use [ExportBoard] or [WriteBoard] for boards and [ExportReport] or
// [WriteReport] for simulation reports. Reports use the JSON encoding of
// [game.Report] unchanged.
//
// [game.Report]: github.com/matzehuels/blocky/pkg/game.Report
package io
