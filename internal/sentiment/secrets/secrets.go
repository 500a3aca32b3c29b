// Package secrets resolves the language-model credential from the ambient
// environment. Exhausting every source is a normal condition, not an error:
// the sentiment chain treats a missing key as "service unavailable".
package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// defaultSecretsDir is the conventional mount point for orchestrator-managed
// secrets (docker/k8s secret volumes).
const defaultSecretsDir = "/run/secrets"

// Discover resolves a named credential, trying in order: a mounted secrets
// file, the process environment, a .env in the working directory, a .env in
// the parent directory, and a .env next to the running binary. Returns the
// empty string when every source is exhausted.
func Discover(name string) string {
	workDir, _ := os.Getwd()

	execDir := ""
	if exe, err := os.Executable(); err == nil {
		execDir = filepath.Dir(exe)
	}

	return discover(name, defaultSecretsDir, workDir, execDir)
}

func discover(name, secretsDir, workDir, execDir string) string {
	if v := fromSecretsFile(secretsDir, name); v != "" {
		return v
	}

	if v := os.Getenv(name); v != "" {
		return v
	}

	candidates := make([]string, 0, 3)
	if workDir != "" {
		candidates = append(candidates,
			filepath.Join(workDir, ".env"),
			filepath.Join(workDir, "..", ".env"),
		)
	}
	if execDir != "" {
		candidates = append(candidates, filepath.Join(execDir, ".env"))
	}

	for _, path := range candidates {
		if v := fromDotenv(path, name); v != "" {
			return v
		}
	}
	return ""
}

func fromSecretsFile(dir, name string) string {
	raw, err := os.ReadFile(filepath.Join(dir, strings.ToLower(name)))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func fromDotenv(path, name string) string {
	vars, err := godotenv.Read(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(vars[name])
}
