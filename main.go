package main

import "github.com/JackJiang1989/ht/cmd"

func main() {
	cmd.Execute()
}
