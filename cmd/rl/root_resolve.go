package main

import (
	"fmt"

	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/root"
)

// resolveRepoRoot returns the repo root that contains .release-layer or
// fails if missing. An explicit --root flag value bypasses discovery.
func resolveRepoRoot(flagValue string) (string, error) {
	if flagValue != "" {
		repoRoot, found, err := root.FindReleaseLayerRoot(flagValue)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf(messages.RootMissingReleaseLayer)
		}
		return repoRoot, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	repoRoot, found, err := root.FindReleaseLayerRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.RootMissingReleaseLayer)
	}
	return repoRoot, nil
}

// resolveInitRoot finds the best candidate root for initialization
// (prefers .release-layer, then .git, then the working directory).
func resolveInitRoot() (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	return root.FindRepoRoot(cwd)
}
