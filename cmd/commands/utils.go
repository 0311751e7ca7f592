package commands

import (
	"fmt"
	"os"

	"vidvault/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("vidvault error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`vidvault - self-hosted video sharing server

Usage:
  vidvault run <config.yml>   start the server
  vidvault version            print the version
  vidvault help               show this message`)
}
