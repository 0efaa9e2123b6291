package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env, если он есть, и флаги командной строки.
// Флаги перекрывают переменные окружения.
func Load() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var portFlag, tokenFlag string
	flag.StringVar(&portFlag, "port", "", "Local API port (overrides PORT environment variable)")
	flag.StringVar(&tokenFlag, "token", "", "Partner bearer token (overrides PARTNER_TOKEN environment variable)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":          portFlag,
		"PARTNER_TOKEN": tokenFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
