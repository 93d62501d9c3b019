package redis

import "fmt"

// Key prefix for all tracker data
const keyPrefix = "skytracker"

// namesKey returns the key of the hash holding identifier -> resolved name
func namesKey() string {
	return fmt.Sprintf("%s:names", keyPrefix)
}
