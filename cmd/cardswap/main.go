package main

import "github.com/fyerfyer/cardswap/cmd/cardswap/cmd"

func main() {
	cmd.Execute()
}
