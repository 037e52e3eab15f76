package dev

import (
	"path/filepath"

	"github.com/SRombauts/HtmlBuilder/internal/config"
)

// CollectWatchPaths returns the paths the preview server watches: the
// description directory and the configuration file.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{cfg.SourcePath()}
	if p := cfg.Path(); p != "" {
		paths = append(paths, p)
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}
