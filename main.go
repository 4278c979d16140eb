package main

import (
	cmd "github.com/Geun-Oh/qlog/cmd/qlog"
)

func main() {
	cmd.Execute()
}
