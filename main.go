package main

import "vehicle-auction/internal/cli"

func main() {
	cli.Execute()
}
