// meta/meta.go
package meta

import "time"

// BOARD_ROWS defines the default board height.
const BOARD_ROWS = 7

// BOARD_COLS defines the default board width.
const BOARD_COLS = 7

// TIME_LIMIT defines the time budget of a single move.
const TIME_LIMIT = 150 * time.Millisecond

// TIMER_THRESHOLD defines the time kept in reserve by searching agents so
// they return before the time limit.
const TIMER_THRESHOLD = 10 * time.Millisecond

// SEARCH_DEPTH defines the depth of fixed-depth searches.
const SEARCH_DEPTH = 3

// NUM_MATCHES defines the number of matches per matchup in a tournament.
const NUM_MATCHES = 5
