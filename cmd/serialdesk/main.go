package main

import "github.com/wllcyg/serialdesk/internal/cli"

func main() {
	cli.Execute()
}
