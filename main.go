package main

import (
	"github.com/julien-sobczak/the-moodwriter/cmd"
)

func main() {
	cmd.Execute()
}
