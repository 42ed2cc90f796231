package main

import "github.com/ricky-aufvaa/dfmea/cmd/dfmea/cmd"

func main() {
	cmd.Execute()
}
