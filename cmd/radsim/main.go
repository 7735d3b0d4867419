package main

import "github.com/radsim/roadstyle/cmd"

func main() {
	cmd.Main()
}
