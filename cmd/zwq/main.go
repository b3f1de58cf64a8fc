// Package main is the entry point of zwq, a command line front end for
// the zero-width text codec.
package main

import "github.com/yyyoichi/zerowidth/cmd/zwq/app"

func main() {
	app.Execute()
}
