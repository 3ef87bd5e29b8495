package main

import "github.com/jarrensj/git-chron-job/cmd"

func main() {
	cmd.Run()
}
