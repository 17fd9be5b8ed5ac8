package main

import (
	"magnetmoments-sync/cmd/magnetsync/cmd"
)

func main() {
	cmd.Execute()
}
