package main

import (
	"os"

	"github.com/mattertools/mattermost-go-client/internal/mmcli"
)

func main() {
	if err := mmcli.Execute(); err != nil {
		os.Exit(1)
	}
}
