// Package stub implements a stand-in for the word finder generation service.
//
// The server accepts the same POST the real service does and always replies
// with one fixed puzzle, so the client can be developed and tested offline.
//
// # Routes
//
//	POST /wordfinder   validate the request and reply with the fixture
//	GET  /wordfinder   200, used by 'wordfinder check'
//	GET  /healthz      200
//
// The generation path is configurable. Unknown routes get a JSON 404.
//
// # Fixtures
//
// A fixture is a YAML file holding the grid (one string per row, letters
// separated by spaces) and the placed words with their [row, column] cells:
//
//	grid:
//	  - "C A T"
//	  - "X D O"
//	  - "Q R G"
//	words:
//	  - word: CAT
//	    cells: [[0, 0], [0, 1], [0, 2]]
//
// Word order in the file is the order placedWords is emitted in.
//
// # Discovery
//
// With Config.Advertise set the server registers itself as
// _wordfinder._tcp over mDNS for the lifetime of Serve.
package stub
