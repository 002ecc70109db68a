package main

import "github.com/loog-project/followlist/cmd"

func main() {
	cmd.Execute()
}
