// Package dev provides live reload for the preview server.
//
// A Watcher polls the description directory and reports changed files.
// The ReloadHub keeps a websocket open with every preview page and tells
// them to reload, or shows an overlay when a description fails to build.
//
// # Reload Protocol
//
// Pages load ScriptPath, which connects to ReloadPath.
// Messages are JSON-encoded:
//
//	{"type": "reload", "file": "..."} // Triggers full page reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev
