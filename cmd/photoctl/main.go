package main

import "github.com/polkiloo/photocatalog/internal/cli"

func main() {
	cli.Execute()
}
