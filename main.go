package main

import "github.com/shaik-zeeshan/circle/cmd"

func main() {
	cmd.Execute()
}
