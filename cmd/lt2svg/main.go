package main

import "github.com/lt2svg/lt2svg/cmd/lt2svg/cmd"

func main() {
	cmd.Execute()
}
