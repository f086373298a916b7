package loader

import (
	"fmt"
	"os"
)

// ManifestEnv names the environment variable consulted when no manifest path is given.
const ManifestEnv = "GDBINDGEN_API_JSON"

// DefaultManifest is the file name looked up in the working directory.
const DefaultManifest = "api.json"

// ResolveManifest finds the manifest file using the resolution order:
// 1. Explicit argument path (if non-empty)
// 2. GDBINDGEN_API_JSON environment variable
// 3. api.json in the working directory
func ResolveManifest(argPath string) (string, error) {
	if argPath != "" {
		if _, err := os.Stat(argPath); err != nil {
			return "", fmt.Errorf("manifest not found at specified path: %s", argPath)
		}
		return argPath, nil
	}

	if envPath := os.Getenv(ManifestEnv); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("manifest not found at %s: %s", ManifestEnv, envPath)
		}
		return envPath, nil
	}

	if _, err := os.Stat(DefaultManifest); err != nil {
		return "", fmt.Errorf("no manifest given; pass a path, set %s, or place %s in the working directory", ManifestEnv, DefaultManifest)
	}
	return DefaultManifest, nil
}

// manifestArg returns the optional positional manifest argument.
func manifestArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// ResolveManifestArgs is ResolveManifest over a command's positional arguments.
func ResolveManifestArgs(args []string) (string, error) {
	return ResolveManifest(manifestArg(args))
}
