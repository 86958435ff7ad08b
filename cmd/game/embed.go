package main

import "embed"

// configFS holds game.json, entities.json, campaign.yaml, stages and maps
//
//go:embed configs
var configFS embed.FS
