package engine

import "connect4/game"

// ErrAborted is returned by Run when an agent gives up without a move.
const ErrAborted game.Error = "game aborted"
