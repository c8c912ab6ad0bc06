package main

import "github.com/briarwood-camp/camp-services/cmd"

func main() {
	cmd.Execute()
}
