package blog

import "embed"

// EmbeddedAssets ships the scripts the rendered pages rely on, so a fresh
// deployment works before any static files exist.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
