package main

import "github.com/ThatOtherAndrew/Morphfield/cmd"

func main() {
	cmd.Execute()
}
