package main

import "github.com/updown/updown-shell/cmd"

func main() {
	cmd.Execute()
}
