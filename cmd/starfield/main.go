package main

import "github.com/aalvaropc/starfield/internal/cli"

func main() {
	cli.Execute()
}
