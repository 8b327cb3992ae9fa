package main

import "github.com/peoplebook/apiserver/cmd"

func main() {
	cmd.Execute()
}
