package main

import (
	"suggestd/internal/suggestctl"
)

func main() {
	suggestctl.Main()
}
