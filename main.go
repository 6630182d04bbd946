package main

import "github.com/KaramelBytes/gamestats/cmd"

func main() {
	cmd.Execute()
}
