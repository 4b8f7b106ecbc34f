package main

import "github.com/pfrederiksen/summit-invite/internal/cli"

func main() {
	cli.Execute()
}
