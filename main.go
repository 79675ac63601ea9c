package main

import "volteryde-gate/internal/cli"

func main() {
	cli.Execute()
}
