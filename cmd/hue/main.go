package main

import "github.com/amterp/hue/internal/cli"

func main() {
	cli.Run()
}
