package main

import "github.com/ardanlabs/hashchain/app/tooling/chain/cmd"

func main() {
	cmd.Execute()
}
