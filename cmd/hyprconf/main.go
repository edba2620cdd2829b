package main

import "hyprconf/cmd/hyprconf/cmd"

func main() {
	cmd.Execute()
}
