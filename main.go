/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ccgkit/go-card-table/cmd"

func main() {
	cmd.Execute()
}
