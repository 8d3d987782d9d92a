package main

import "github.com/samvad-hq/iis-schedule-client/internal/cli"

func main() {
	cli.Execute()
}
