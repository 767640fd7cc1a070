package main

import "github.com/lucazevedos/bot-review-shopify/cmd"

func main() {
	cmd.Execute()
}
