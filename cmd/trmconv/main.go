package main

import "github.com/Krymelte/trm/cmd/trmconv/cmd"

func main() {
	cmd.Execute()
}
