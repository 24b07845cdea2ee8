package main

import "cts/cmd"

func main() {
	cmd.Execute()
}
