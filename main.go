package main

import "github.com/manifoldbot/quoter/cmd"

func main() {
	cmd.Execute()
}
