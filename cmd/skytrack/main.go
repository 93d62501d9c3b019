package main

import "github.com/skytracker/skytracker/internal/cli"

func main() {
	cli.Execute()
}
