package cryptox

import (
	"crypto/rand"
	"fmt"
	"os"
	"strings"
)

// MasterKeyEnv names the environment variable read when no key file is set.
const MasterKeyEnv = "INTAKE_MASTER_KEY"

// KeySource reports where LoadMasterKey found its key material.
type KeySource string

const (
	KeySourceFile      KeySource = "file"
	KeySourceEnv       KeySource = "env"
	KeySourceEphemeral KeySource = "ephemeral"
)

// LoadMasterKey returns raw key material from path, or from INTAKE_MASTER_KEY
// when path is empty. With neither set it generates a random key, which means
// encrypted fields written by this process cannot be read after a restart.
func LoadMasterKey(path string) ([]byte, KeySource, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read master key file: %w", err)
		}
		key := []byte(strings.TrimSpace(string(data)))
		if len(key) == 0 {
			return nil, "", fmt.Errorf("master key file %s is empty", path)
		}
		return key, KeySourceFile, nil
	}

	if env := os.Getenv(MasterKeyEnv); env != "" {
		return []byte(env), KeySourceEnv, nil
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, "", fmt.Errorf("generate ephemeral master key: %w", err)
	}
	return key, KeySourceEphemeral, nil
}
