package main

import "bunny-manager/cmd"

func main() {
	cmd.Execute()
}
