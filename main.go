package main

import "jangbogo/cmd"

func main() {
	cmd.Execute()
}
