package config

import "os"

func IsDebug() bool {
	return os.Getenv("DWIGHT_DEBUG") == "1"
}
