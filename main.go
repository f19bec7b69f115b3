package main

import "github.com/curricuforge/curricuforge/cmd"

func main() {
	cmd.Execute()
}
