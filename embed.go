package main

import "embed"

// dataFS holds the default game config and level maps. It has to be declared
// next to data/ because //go:embed cannot reach parent directories.
//
//go:embed data/game.yaml data/levels
var dataFS embed.FS
