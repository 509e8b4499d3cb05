package main

import "github.com/quran-reels/reelscaffold/cmd"

func main() {
	cmd.Execute()
}
