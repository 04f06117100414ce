package main

import "github.com/mangelajo/musicevents/cmd"

func main() {
	cmd.Execute()
}
