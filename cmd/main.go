package main

import (
	"radiograph-service/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// A store that cannot be reached at startup is fatal, no retry.
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	app.Run()
}
