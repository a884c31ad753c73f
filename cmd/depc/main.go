package main

import (
	"martianoff/depc/cmd/depc/commands"
)

func main() {
	commands.Execute()
}
