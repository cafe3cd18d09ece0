package main

import "github.com/SeamusWaldron/gocube_oll_solver/internal/cli"

func main() {
	cli.Execute()
}
