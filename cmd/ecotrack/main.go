package main

import "github.com/ecotrack-app/ecotrack/internal/cli"

func main() {
	cli.Execute()
}
