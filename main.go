package main

import "speaky-backend/config"

func main() {
	config.RunServer()
}
