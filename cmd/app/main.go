// entry point to app :)
package main

import (
	"github.com/grandmixture/profile-card/config"
	"github.com/grandmixture/profile-card/internal/appServer"

	"github.com/sirupsen/logrus"
)

func main() {
	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	appServer.NewServer(cfg)
}
