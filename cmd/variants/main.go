package main

import "github.com/liantichess/variants/internal/cmd"

func main() {
	cmd.Execute()
}
