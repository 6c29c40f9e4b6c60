package main

import "github.com/arloliu/rssifit/internal/cli"

// main runs the rssifit command line.
func main() {
	cli.Execute()
}
