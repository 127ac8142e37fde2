package main

import "github.com/iamNilotpal/gzip/cmd/gzip/cli"

func main() {
	cli.Execute()
}
