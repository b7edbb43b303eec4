package main

import "github.com/adriancalavie/aoc-2023-day1/internal/cli"

func main() {
	cli.Execute()
}
