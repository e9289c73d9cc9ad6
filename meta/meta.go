// meta/meta.go
package meta

// GRID_SIZE defines the board dimension.
const GRID_SIZE = 4

// SPAWN_PROBABILITY defines the chance that a spawned tile is a 2 rather than a 4.
const SPAWN_PROBABILITY = 0.9

// SEARCH_DEPTH defines the number of player moves expectimax looks ahead.
const SEARCH_DEPTH = 3

// CACHE_CAPACITY defines the number of node values the transposition cache holds.
const CACHE_CAPACITY = 10000

// GO_ROUTINES defines the number of goroutines evaluating root moves.
const GO_ROUTINES = 4

// MAX_MOVES caps the length of a single game.
const MAX_MOVES = 100000

// GAMES defines the number of games per agent in an experiment.
const GAMES = 10

// WINNING_TILE is the tile counted as a win.
const WINNING_TILE = 2048
