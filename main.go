package main

import "github.com/MRUIAW/ReplayCraft/cmd"

func main() {
	cmd.Execute()
}
