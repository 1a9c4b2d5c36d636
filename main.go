package main

import "github.com/cognitask/cognitask/cmd"

func main() {
	cmd.Execute()
}
