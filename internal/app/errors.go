// internal/app/errors.go
package app

import "errors"

// Rejections of player commands. A rejected command changes nothing.
var (
	ErrInsufficientFunds = errors.New("not enough money")
	ErrOnPath            = errors.New("too close to the enemy path")
	ErrTooCloseToTower   = errors.New("too close to another tower")
	ErrOutOfBounds       = errors.New("outside the playfield")
	ErrMaxLevel          = errors.New("tower is already at max level")
	ErrWaveInProgress    = errors.New("a wave is already in progress")
	ErrUnknownWave       = errors.New("no such wave")
	ErrUnknownTower      = errors.New("no such tower")
	ErrUnknownTowerDef   = errors.New("no such tower definition")
	ErrNotInfected       = errors.New("tower is not infected")
	ErrRunOver           = errors.New("the run is over")
)
