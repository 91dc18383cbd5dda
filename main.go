package main

import "labsim/cmd"

func main() {
	cmd.Execute()
}
