package main

import "nexpose-cli/cmd"

func main() {
	cmd.Execute()
}
