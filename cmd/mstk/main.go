package main

import (
	"github.com/openseries/metastock/cmd/mstk/cmd"
)

func main() {
	cmd.Execute()
}
