package main

import "github.com/notargets/gotangent/cmd"

func main() {
	cmd.Execute()
}
