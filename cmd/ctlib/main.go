package main

import "github.com/narahiero/CTLib-sub000/cmd"

func main() {
	cmd.Execute()
}
