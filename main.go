package main

import "arcade-catalog/cmd"

func main() {
	cmd.Execute()
}
