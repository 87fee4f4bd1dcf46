package main

import "github.com/philipparndt/gochair/cmd"

func main() {
	cmd.Execute()
}
