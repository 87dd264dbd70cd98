package main

import "github.com/mouse-blink/topline/cmd"

func main() {
	cmd.Execute()
}
