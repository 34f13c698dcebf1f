package config

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// SecretRegex matches environment variable references like ${ENV_VAR}.
var SecretRegex = regexp.MustCompile(`\${([^}]+)}`)

// expandEnv replaces every ${VAR} in content with its value.
// A reference to an unset variable is an error.
func expandEnv(content string) (string, error) {
	var missing []string
	expanded := SecretRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		missing = append(missing, name)
		return match
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("undefined environment variables: %s", strings.Join(lo.Uniq(missing), ", "))
	}
	return expanded, nil
}

// readSecret returns value when it is set and otherwise the first line of file.
func readSecret(value, file string) (string, error) {
	if value != "" || file == "" {
		return value, nil
	}
	if err := VerifyPermissions(file); err != nil {
		return "", err
	}
	return readKey(file)
}

func readKey(path string) (key string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error reading key: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	keyb, _, err := r.ReadLine()
	if err != nil {
		return "", fmt.Errorf("error reading line from %q: %w", path, err)
	}
	key = strings.TrimSpace(string(keyb))
	if key == "" {
		return "", fmt.Errorf("key file %q is empty", path)
	}
	return key, nil
}

// VerifyPermissions fails unless path is readable by its owner only.
func VerifyPermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking keyfile permissions: %w", err)
	}

	perms := info.Mode().Perm()
	// Error messages will state that we want 0600,
	// but we'll also accept 0400 which is even more restricted.
	// The file might be provided by some secrets managing software as readonly.
	if perms != 0600 && perms != 0400 {
		return fmt.Errorf("invalid permissions for \"%s\": expected file permissions \"-rw-------\"; found \"%s\"", path, fs.FileMode(perms))
	}
	return nil
}
