package main

import "gpxcolor/cmd/gpxcolor-cli/cmd"

func main() {
	cmd.Execute()
}
