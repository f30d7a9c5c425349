package main

import "github.com/kamusis/fcmd/cmd"

func main() {
	cmd.Execute()
}
