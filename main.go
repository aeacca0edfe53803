package main

import "prigorodctl/cmd"

func main() {
	cmd.Execute()
}
