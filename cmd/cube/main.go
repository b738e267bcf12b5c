package main

import (
	"os"

	"spincube/internal/app"
)

func main() {
	os.Exit(app.Run(app.Clock))
}
