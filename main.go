package main

import "org2csv/cmd"

func main() {
	cmd.Execute()
}
