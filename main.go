package main

import "github.com/davibonetto/titan-cli/cmd"

func main() {
	cmd.Execute()
}
