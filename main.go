package main

import "github.com/jiperezh/gosteel/cmd"

func main() {
	cmd.Execute()
}
