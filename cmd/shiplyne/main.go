package main

import "shiplyne/app"

func main() {
	app.Run()
}
