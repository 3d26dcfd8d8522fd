package main

import "github.com/amparo-care/amparo/cmd/amparo/command"

func main() {
	command.Execute()
}
