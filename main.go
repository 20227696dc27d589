package main

import "arche-openrefine/cmd"

func main() {
	cmd.Execute()
}
