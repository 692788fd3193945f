package commands

import (
	"fmt"
	"os"

	"clipshelf/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("clipshelf error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`usage: clipshelf <command> [arguments]

commands:
  run <config.yml>   start the server
  version            print the version
  help               print this message`) //nolint
}
