// cmd/picalc-bench/main.go
package main

import (
	"picalc/internal/appshell"
	"picalc/internal/benchapp"
)

func main() { appshell.Main(benchapp.RunContext) }
