// cmd/picalc-nilakantha/main.go
package main

import (
	"picalc/internal/appshell"
	"picalc/internal/seriesapp"
)

func main() { appshell.Main(seriesapp.RunContext) }
