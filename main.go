package main

import "github.com/tanq16/steamwd/cmd"

func main() {
	cmd.Execute()
}
