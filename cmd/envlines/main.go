package main

import "github.com/aalvaropc/envlines/internal/cli"

func main() {
	cli.Execute()
}
