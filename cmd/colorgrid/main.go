package main

import "github.com/MeKo-Tech/colorgrid/internal/cmd"

func main() {
	cmd.Execute()
}
