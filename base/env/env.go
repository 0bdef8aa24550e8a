package env

import (
	"os"
)

// PodName example: marketclient-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: sepolia
func EnvName() string {
	return os.Getenv("ENV_NAME")
}
