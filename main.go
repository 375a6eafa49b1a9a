package main

import "ecommerce-api/cmd"

func main() {
	cmd.Execute()
}
