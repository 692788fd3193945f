package config

import "fmt"

// Error represents a failure to load or validate the configuration.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
