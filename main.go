package main

import "mspro-labs/cupnote/cmd"

func main() {
	cmd.Execute()
}
