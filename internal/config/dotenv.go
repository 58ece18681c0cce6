package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenv 후보. 앞의 파일이 우선한다.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv reads .env.local then .env into the process environment and
// returns the files it found. godotenv never overwrites a variable that is
// already set, so OS-level env vars take precedence over both files and
// .env.local takes precedence over .env.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	return loaded
}
