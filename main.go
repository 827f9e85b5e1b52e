package main

import "github.com/iksnae/slack-export/cmd"

func main() {
	cmd.Execute()
}
