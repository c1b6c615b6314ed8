package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTokenPath is the conventional location of the token file.
const DefaultTokenPath = "~/.web3_storage_token"

// tokenKey is the key expected in the token file.
const tokenKey = "ACCESS_TOKEN"

// ReadTokenFile reads the bearer token from the file at path. The file holds
// simple "key: value" lines and the token is taken from the ACCESS_TOKEN key;
// all other lines are ignored. A leading "~" in path is expanded to the
// user's home directory.
//
// Returns an error when the file does not exist, cannot be read, or contains
// no non-empty ACCESS_TOKEN entry.
func ReadTokenFile(path string) (string, error) {
	fullPath, err := ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve token path %q: %w", path, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return "", fmt.Errorf("open token file %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, ":") {
			continue
		}
		key, value, _ := strings.Cut(line, ":")
		if strings.TrimSpace(key) != tokenKey {
			continue
		}
		token := strings.TrimSpace(value)
		if token == "" {
			return "", fmt.Errorf("token file %q: empty %s value", path, tokenKey)
		}
		return token, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read token file %q: %w", path, err)
	}

	return "", fmt.Errorf("token file %q: no %s entry found", path, tokenKey)
}

// ExpandPath expands a leading "~" or "~/" in path to the current user's
// home directory. Paths without the prefix are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
