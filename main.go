package main

import "github.com/LavenderBridge/jazzdrill/cmd"

func main() {
	cmd.Execute()
}
