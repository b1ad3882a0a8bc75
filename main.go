package main

import (
	"codescout/cmd"
)

func main() {
	cmd.Execute()
}
