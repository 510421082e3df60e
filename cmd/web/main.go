package main

import "bluehire_backend/internal/app"

func main() {
	app.Run()
}
