// Package battleship defines the contract between a battleship game host and
// the players it drives.
//
// A host constructs a Player from Settings, asks it once for ShipLocations and
// then alternates DropBomb calls with BombFeedback (results of this player's
// shots) and BombedFeedback (results of the opponent's shots on this player's
// board). Board state, shot validation and scoring belong to the host.
//
// # Placement
//
// Row and Col are the host's x and y coordinates, not a matrix row and column.
// A Placement anchors a ship at (Row, Col). Horizontal ships span cells by
// incrementing the first coordinate, vertical ships by incrementing the second:
//
//	battleship.Placement{Length: 3, Row: 1, Col: 2, Horizontal: true}.Cells()
//	// [{1 2} {2 2} {3 2}]
//
// # Timeouts
//
// Hosts that need to bound player calls wrap a Player in Timed, which runs
// each call against a quartz clock and reports ErrTimeout when the deadline
// passes.
package battleship
