// Package puzzle holds the client-side model of a word-search puzzle.
//
// It covers the three pieces of state the client owns and the one wire
// format it speaks:
//
//   - Configuration: the raw form values (rows, columns, word text) and the
//     derivations the client performs on them (word list, request payload).
//   - Result: the grid and placed words returned by the generation service,
//     with a precomputed set of occupied cells for membership tests.
//   - Session: per-screen selection flags and attempt counters.
//
// # Wire Format
//
// The generation service replies with the grid encoded twice: theGrid is a
// JSON string whose content is itself a JSON 2-D array of single-character
// strings. EncodeGrid and DecodeGrid convert between that string and a Grid.
// placedWords is a JSON object; PlacedWords decodes it preserving key order
// so the word list renders in the order the service wrote it.
//
//	{
//	  "theGrid": "[[\"C\",\"A\",\"T\"],[\"X\",\"Y\",\"Z\"]]",
//	  "placedWords": {"CAT": [{"row":0,"column":0},{"row":0,"column":1},{"row":0,"column":2}]}
//	}
//
// Nothing in this package performs I/O; see package generator for the HTTP
// client.
package puzzle
