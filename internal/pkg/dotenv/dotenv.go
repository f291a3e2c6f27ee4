package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из файлов (по умолчанию .env), не перетирая уже
// выставленные в окружении. Флаг -port перекрывает PORT.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return err
	}

	var portFlag string
	if flag.Lookup("port") == nil {
		flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
