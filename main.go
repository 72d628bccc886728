package main

import "github.com/zerospeech/zrc2020/cmd"

func main() {
	cmd.Execute()
}
