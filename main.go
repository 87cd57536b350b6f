package main

import "github.com/jpts/incidr/cmd"

func main() {
	cmd.Execute()
}
