package main

import "caverna/cli"

func main() {
	cli.Execute()
}
