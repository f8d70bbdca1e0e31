package main

import "github.com/dapub1013/deadstream/internal/cli"

func main() {
	cli.Execute()
}
